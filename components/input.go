package components

import "github.com/yohamta/donburi"

// InputData is the polled keyboard state for the current frame.
// JustPressed flags compare against the previous frame.
type InputData struct {
	Left, Right bool
	Jump        bool
	JumpPressed bool

	FullscreenPressed bool
}

var Input = donburi.NewComponentType[InputData]()
