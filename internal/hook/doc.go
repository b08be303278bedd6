// Package hook adapts the transform pipeline to the game's strip update call.
//
// The game calls SetTapeLedData(index, data) once per strip per frame. For
// indices 0-9 the hook copies the strip into a scratch buffer sized for the
// largest strip, transforms the copy, publishes it to the shared region and
// forwards it to the original function. The game's own buffer is never
// written. Any other index is forwarded untouched.
//
//	sched := reload.NewScheduler(reload.Config{Path: config.DefaultPath()})
//	sched.Check()
//	h := hook.New(sched, hook.ForwarderFunc(original), &region)
//	h.SetTapeLedData(index, data)
package hook
