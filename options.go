package lofx

// Option configures a Context during creation.
//
// Example:
//
//	ctx := lofx.NewContext(fns,
//		lofx.WithDebugCallback(func(d lofx.DebugDetails, msg string) {
//			log.Printf("[%s/%s] %s", d.Source, d.Level, msg)
//		}),
//		lofx.WithDebugOutput(true),
//	)
type Option func(*options)

type options struct {
	callback    DebugCallback
	debugOutput bool
}

func defaultOptions() options {
	return options{}
}

// WithDebugCallback installs the diagnostics callback. Without one,
// diagnostics only reach the package logger (see SetLogger).
func WithDebugCallback(cb DebugCallback) Option {
	return func(o *options) {
		o.callback = cb
	}
}

// WithDebugOutput forwards KHR_debug driver messages to the diagnostics
// channel with source SourceOpenGL. It has no effect when the GL functions
// do not implement gl.DebugOutput.
func WithDebugOutput(enabled bool) Option {
	return func(o *options) {
		o.debugOutput = enabled
	}
}
