package cournot

import (
	"encoding/gob"
	"fmt"

	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr"
)

// turnType represents the kind of node at a given point in the game.
type turnType uint8

const (
	_ turnType = iota
	Firm1Move
	Firm2Move
	GameOver
)

var turnTypeStr = [...]string{
	"Invalid",
	"Firm1Move",
	"Firm2Move",
	"GameOver",
}

func (tt turnType) String() string {
	return turnTypeStr[tt]
}

// GameNode implements cfr.GameTreeNode for the one-shot Cournot quantity
// game. Firm 1 moves first in tree order and firm 2 second, but firm 2's
// information set does not reveal firm 1's choice, so the game remains
// simultaneous-move. There are no chance nodes: the tree is one firm 1
// decision node, one layer of firm 2 decision nodes, and a terminal leaf
// per quantity pair whose utilities come from the profit tables.
type GameNode struct {
	game Game
	// payoff1[q1][q2] is firm 1's profit; payoff2[q2][q1] is firm 2's.
	// All nodes of one tree share the same tables.
	payoff1 [][]float64
	payoff2 [][]float64

	turnType turnType
	q1, q2   int

	// children are the possible next states in the game.
	children []GameNode
	parent   *GameNode
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewGameTree creates the root node of the extensive-form tree for g.
func NewGameTree(g Game) (*GameNode, error) {
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game")
	}

	A, B := g.PayoffMatrices()
	return &GameNode{
		game:     g,
		payoff1:  A,
		payoff2:  B,
		turnType: Firm1Move,
	}, nil
}

// Type implements cfr.GameTreeNode.
func (gn *GameNode) Type() cfr.NodeType {
	if gn.turnType == GameOver {
		return cfr.TerminalNodeType
	}

	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (gn *GameNode) Player() int {
	if gn.turnType == Firm2Move {
		return 1
	}

	return 0
}

// InfoSet implements cfr.GameTreeNode. Each firm has exactly one
// information set: quantities are chosen simultaneously, so nothing
// about the other firm's choice is observable at decision time.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	return &InfoSet{Firm: uint8(player)}
}

// Utility implements cfr.GameTreeNode.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	if player == 0 {
		return gn.payoff1[gn.q1][gn.q2]
	}

	return gn.payoff2[gn.q2][gn.q1]
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	switch gn.turnType {
	case Firm1Move:
		return "firm 1 to choose an output quantity"
	case Firm2Move:
		return "firm 2 to choose an output quantity"
	default:
		return fmt.Sprintf("game over with quantities (q1=%d, q2=%d)", gn.q1, gn.q2)
	}
}

func (gn *GameNode) allocChildren(n int) {
	gn.children = allocGameNodeSlice()
	// Children are initialized as a copy of the current game node,
	// but without any children (the new node's children must be built).
	childPrototype := *gn
	childPrototype.children = nil
	childPrototype.parent = gn
	for i := 0; i < n; i++ {
		gn.children = append(gn.children, childPrototype)
	}
}

func (gn *GameNode) buildChildren() {
	if len(gn.children) > 0 {
		return // Already built.
	}

	n := gn.game.NumQuantities
	switch gn.turnType {
	case Firm1Move:
		gn.allocChildren(n)
		for i := range gn.children {
			child := &gn.children[i]
			child.turnType = Firm2Move
			child.q1 = i
		}
	case Firm2Move:
		gn.allocChildren(n)
		for i := range gn.children {
			child := &gn.children[i]
			child.turnType = GameOver
			child.q2 = i
		}
	case GameOver:
	default:
		panic("unimplemented turn type!")
	}
}

// NumChildren implements cfr.GameTreeNode.
func (gn *GameNode) NumChildren() int {
	if gn.turnType == GameOver {
		return 0
	}

	return gn.game.NumQuantities
}

// GetChild implements cfr.GameTreeNode.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	if gn.children == nil {
		gn.buildChildren()
	}

	return &gn.children[i]
}

// Parent implements cfr.GameTreeNode.
func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn *GameNode) GetChildProbability(i int) float64 {
	panic("cournot game tree has no chance nodes")
}

// SampleChild implements cfr.GameTreeNode.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("cournot game tree has no chance nodes")
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {
	freeGameNodeSlice(gn.children)
	gn.children = nil
}

// InfoSet identifies a decision point from one firm's point of view.
type InfoSet struct {
	Firm uint8
}

// Key implements cfr.InfoSet.
func (is *InfoSet) Key() string {
	return string([]byte{is.Firm})
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *InfoSet) MarshalBinary() ([]byte, error) {
	return []byte{is.Firm}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *InfoSet) UnmarshalBinary(buf []byte) error {
	if len(buf) != 1 {
		return errors.Errorf("info set buffer has %d bytes, expected 1", len(buf))
	}

	is.Firm = buf[0]
	return nil
}

func init() {
	gob.Register(&InfoSet{})
}
