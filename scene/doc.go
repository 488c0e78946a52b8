// Package scene drives one piece of engine content through its lifecycle:
// load a file, select an artboard, select a state machine or animation,
// then advance, draw and forward pointer input once per frame.
//
// A Session is bound to a host factory when it is created and allocates
// every render object through it. It owns at most one file, one artboard
// instance of that file and one sub-scene instance of that artboard, and
// releases them in reverse order:
//
//	s := scene.New(binding, factoryHandle)
//	defer s.Close()
//
//	if err := s.LoadFile(data); err != nil { ... }
//	if err := s.LoadArtboard(""); err != nil { ... }
//	if err := s.LoadStateMachine(""); err != nil { ... }
//
//	for running {
//	    s.AdvanceAndApply(dt)
//	    s.Draw(canvasHandle)
//	}
//
// Queries on a session without a sub-scene return zero values instead of
// errors, since hosts poll them every frame.
package scene
