package generator

import (
	"math/rand"

	"spence/pkg/engine/world"
)

// BSPGenerator partitions the map with a binary space partition and walls in
// one room per leaf, leaving a door in every side.
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "bsp"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
	coverOdds   = 6 // One cell in coverOdds inside a room gets a cover wall
)

// Generate creates a new terrain using BSP algorithm
func (g *BSPGenerator) Generate(rng *rand.Rand, size world.Pos) *world.Terrain {
	t := world.NewTerrain(size)

	root := &bspNode{width: size.X, height: size.Y}
	splitBSP(rng, root, minNodeSize)
	createRooms(rng, root)

	for _, room := range collectRooms(root) {
		wallRoom(t, rng, room)
		scatterCover(t, rng, room)
	}
	return t
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	canSplitX := node.width >= minSize*2
	canSplitY := node.height >= minSize*2

	var splitHorizontal bool
	switch {
	case canSplitX && canSplitY:
		if node.width == node.height {
			splitHorizontal = rng.Intn(2) == 0
		} else {
			splitHorizontal = node.height > node.width
		}
	case canSplitX:
		splitHorizontal = false
	case canSplitY:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes. Leaves too small for a room stay empty.
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	maxW, maxH := node.width-roomPadding, node.height-roomPadding
	if maxW < minRoomSize || maxH < minRoomSize {
		return
	}
	roomWidth := minRoomSize + rng.Intn(maxW-minRoomSize+1)
	roomHeight := minRoomSize + rng.Intn(maxH-minRoomSize+1)

	node.room = &bspRoom{
		x:      node.x + 1 + rng.Intn(node.width-roomWidth-1),
		y:      node.y + 1 + rng.Intn(node.height-roomHeight-1),
		width:  roomWidth,
		height: roomHeight,
	}
}

// wallRoom surrounds the room with Blocking walls and opens one door per side
func wallRoom(t *world.Terrain, rng *rand.Rand, r *bspRoom) {
	doorN, doorS := rng.Intn(r.width), rng.Intn(r.width)
	doorW, doorE := rng.Intn(r.height), rng.Intn(r.height)

	for i := 0; i < r.width; i++ {
		if i != doorN {
			t.SetWall(world.P3(r.x+i, r.y, 0), world.North, world.WallBlocking)
		}
		if i != doorS {
			t.SetWall(world.P3(r.x+i, r.y+r.height-1, 0), world.South, world.WallBlocking)
		}
	}
	for i := 0; i < r.height; i++ {
		if i != doorW {
			t.SetWall(world.P3(r.x, r.y+i, 0), world.West, world.WallBlocking)
		}
		if i != doorE {
			t.SetWall(world.P3(r.x+r.width-1, r.y+i, 0), world.East, world.WallBlocking)
		}
	}
}

// scatterCover drops low cover on inner edges of the room
func scatterCover(t *world.Terrain, rng *rand.Rand, r *bspRoom) {
	for y := r.y; y < r.y+r.height-1; y++ {
		for x := r.x; x < r.x+r.width-1; x++ {
			if rng.Intn(coverOdds) != 0 {
				continue
			}
			d := world.East
			if rng.Intn(2) == 0 {
				d = world.South
			}
			t.SetWall(world.P3(x, y, 0), d, world.WallCover)
		}
	}
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}

	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
