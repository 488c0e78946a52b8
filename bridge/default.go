package bridge

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/host"
)

var std = New(host.Default())

// Default returns the bridge used by the package-level functions.
func Default() *Bridge { return std }

// RegisterPathDelegates installs the path table of the default bridge.
func RegisterPathDelegates(d host.PathDelegates) { std.RegisterPathDelegates(d) }

// RegisterImageDelegates installs the image table of the default bridge.
func RegisterImageDelegates(d host.ImageDelegates) { std.RegisterImageDelegates(d) }

// RegisterPaintDelegates installs the paint table of the default bridge.
func RegisterPaintDelegates(d host.PaintDelegates) { std.RegisterPaintDelegates(d) }

// RegisterRendererDelegates installs the renderer table of the default bridge.
func RegisterRendererDelegates(d host.RendererDelegates) { std.RegisterRendererDelegates(d) }

// RegisterFactoryDelegates installs the factory table of the default bridge.
func RegisterFactoryDelegates(d host.FactoryDelegates) { std.RegisterFactoryDelegates(d) }

// SceneNew creates a session on the default bridge. See Bridge.SceneNew.
func SceneNew(factory host.Handle) host.Handle { return std.SceneNew(factory) }

// SceneDelete deletes a session of the default bridge.
func SceneDelete(h host.Handle) { std.SceneDelete(h) }

// SceneLoadFile calls Bridge.SceneLoadFile on the default bridge.
func SceneLoadFile(h host.Handle, data []byte, length int) bool {
	return std.SceneLoadFile(h, data, length)
}

// SceneLoadArtboard calls Bridge.SceneLoadArtboard on the default bridge.
func SceneLoadArtboard(h host.Handle, name string) bool { return std.SceneLoadArtboard(h, name) }

// SceneLoadStateMachine calls Bridge.SceneLoadStateMachine on the default bridge.
func SceneLoadStateMachine(h host.Handle, name string) bool {
	return std.SceneLoadStateMachine(h, name)
}

// SceneLoadAnimation calls Bridge.SceneLoadAnimation on the default bridge.
func SceneLoadAnimation(h host.Handle, name string) bool { return std.SceneLoadAnimation(h, name) }

// SceneSetBool calls Bridge.SceneSetBool on the default bridge.
func SceneSetBool(h host.Handle, name string, v bool) bool { return std.SceneSetBool(h, name, v) }

// SceneSetNumber calls Bridge.SceneSetNumber on the default bridge.
func SceneSetNumber(h host.Handle, name string, v float32) bool {
	return std.SceneSetNumber(h, name, v)
}

// SceneFireTrigger calls Bridge.SceneFireTrigger on the default bridge.
func SceneFireTrigger(h host.Handle, name string) bool { return std.SceneFireTrigger(h, name) }

// SceneWidth calls Bridge.SceneWidth on the default bridge.
func SceneWidth(h host.Handle) float32 { return std.SceneWidth(h) }

// SceneHeight calls Bridge.SceneHeight on the default bridge.
func SceneHeight(h host.Handle) float32 { return std.SceneHeight(h) }

// SceneDurationSeconds calls Bridge.SceneDurationSeconds on the default bridge.
func SceneDurationSeconds(h host.Handle) float32 { return std.SceneDurationSeconds(h) }

// SceneLoop calls Bridge.SceneLoop on the default bridge.
func SceneLoop(h host.Handle) int32 { return std.SceneLoop(h) }

// SceneIsTranslucent calls Bridge.SceneIsTranslucent on the default bridge.
func SceneIsTranslucent(h host.Handle) bool { return std.SceneIsTranslucent(h) }

// SceneName calls Bridge.SceneName on the default bridge.
func SceneName(h host.Handle, dst []byte) int { return std.SceneName(h, dst) }

// SceneAdvanceAndApply calls Bridge.SceneAdvanceAndApply on the default bridge.
func SceneAdvanceAndApply(h host.Handle, seconds float32) bool {
	return std.SceneAdvanceAndApply(h, seconds)
}

// SceneDraw calls Bridge.SceneDraw on the default bridge.
func SceneDraw(h, renderer host.Handle) { std.SceneDraw(h, renderer) }

// ScenePointerDown calls Bridge.ScenePointerDown on the default bridge.
func ScenePointerDown(h host.Handle, pos rive.Vec2D) { std.ScenePointerDown(h, pos) }

// ScenePointerMove calls Bridge.ScenePointerMove on the default bridge.
func ScenePointerMove(h host.Handle, pos rive.Vec2D) { std.ScenePointerMove(h, pos) }

// ScenePointerUp calls Bridge.ScenePointerUp on the default bridge.
func ScenePointerUp(h host.Handle, pos rive.Vec2D) { std.ScenePointerUp(h, pos) }
