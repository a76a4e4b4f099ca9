package state

import (
	"spence/pkg/game/unit"
)

// enemyPassAP is what an enemy unit spends when it passes its turn
const enemyPassAP = 3

// InitTurn starts side's turn: its units get fresh AP and the first one is selected
func (g *Game) InitTurn(side unit.Side) error {
	g.Turn = side
	g.TurnNo++
	g.Deselect()
	for _, u := range g.SideUnits(side) {
		u.ResetAP()
	}
	log.WithField("side", side).WithField("turn", g.TurnNo).Info("turn started")

	if side == unit.SideEnemy {
		g.enemyTurn()
		return g.EndTurnIfDone()
	}
	return g.SelectNext()
}

// enemyTurn lets every enemy pass
func (g *Game) enemyTurn() {
	for _, u := range g.SideUnits(unit.SideEnemy) {
		u.AP = max(u.AP-enemyPassAP, 0)
	}
}

// Done reports whether no unit of the current side has AP left
func (g *Game) Done() bool {
	for _, u := range g.SideUnits(g.Turn) {
		if !u.Exhausted() {
			return false
		}
	}
	return true
}

// EndTurnIfDone hands the turn to the other side once the current side is out of AP
func (g *Game) EndTurnIfDone() error {
	if g.Turn == unit.SideNone || !g.Done() {
		return nil
	}
	return g.InitTurn(g.Turn.Opponent())
}

// EndTurn drains the current side's AP and passes the turn
func (g *Game) EndTurn() error {
	for _, u := range g.SideUnits(g.Turn) {
		u.AP = 0
	}
	return g.EndTurnIfDone()
}
