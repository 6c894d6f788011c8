package entities

// Player is the protagonist: a mover plus lives and the powered flag that is
// set while a frightened window is active.
type Player struct {
	Mover
	Lives   int
	Powered bool
}
