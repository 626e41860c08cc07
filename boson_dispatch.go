package boson

import (
	"fmt"
)

// Callable is the target function a Runner wraps. Positional arguments
// arrive in order; when the command takes options, the resolved local
// Options map is appended as the final argument.
type Callable func(args ...any) (any, error)

// ResultHook post-processes a successful result before it is returned,
// with the resolved global/render options available for the renderer.
// The default hook is the identity.
type ResultHook func(result any, global *GlobalOptionState) any

// InvokeContext is the explicit, immutable per-invocation context.
// Interactive invocations get raised errors back; outermost
// non-interactive ones get a printed diagnostic and a clean failure.
type InvokeContext struct {
	Interactive bool
	Stdout      StdoutWriter
	Stderr      StderrWriter
}

func defaultInvokeContext() InvokeContext {
	return InvokeContext{Stdout: stdoutWriter, Stderr: stderrWriter}
}

// Runner binds a descriptor to its callable at registration time. All
// invocations flow through the translator; the original callable is
// never patched or replaced.
type Runner struct {
	descriptor *CommandDescriptor
	callable   Callable
	hook       ResultHook
}

// Wrap composes a descriptor and callable into a Runner. Wrapping
// happens once, at registration, via plain composition.
func Wrap(d *CommandDescriptor, fn Callable) *Runner {
	return &Runner{descriptor: d, callable: fn}
}

// SetResultHook overrides the identity post-processing hook.
func (r *Runner) SetResultHook(hook ResultHook) *Runner {
	r.hook = hook
	return r
}

func (r *Runner) Descriptor() *CommandDescriptor {
	return r.descriptor
}

// Invoke runs the command in the default outermost, non-interactive
// context: translation errors print as "Error: <message>" and yield a
// nil result with no error escaping.
func (r *Runner) Invoke(args ...any) (any, error) {
	return r.InvokeWith(defaultInvokeContext(), args...)
}

// InvokeWith runs the command under an explicit context. On a help
// short-circuit the help line is printed and HelpInvokedErr returned;
// the callable is never invoked. SwitchError and ArityError are
// swallowed into a diagnostic unless the context is interactive.
// DefaultEvalError and callable errors always propagate.
func (r *Runner) InvokeWith(ctx InvokeContext, args ...any) (any, error) {
	if ctx.Stdout == nil {
		ctx.Stdout = stdoutWriter
	}
	if ctx.Stderr == nil {
		ctx.Stderr = stderrWriter
	}

	translation, err := Translate(args, r.descriptor)
	if err != nil {
		if translationFailure(err) && !ctx.Interactive {
			fmt.Fprintf(ctx.Stderr, "Error: %s\n", err.Error())
			return nil, nil
		}
		return nil, err
	}

	if translation.HelpRequested() {
		fmt.Fprintln(ctx.Stdout, translation.HelpText)
		return nil, HelpInvokedErr
	}

	if translation.Global.Pretend {
		return nil, nil
	}

	callArgs := translation.Args
	if r.descriptor.takesOptions() && translation.Local != nil {
		callArgs = append(append([]any(nil), callArgs...), translation.Local)
	}

	result, err := r.callable(callArgs...)
	if err != nil {
		// the wrapped callable's own errors are not this layer's to classify
		return nil, err
	}
	if r.hook != nil {
		result = r.hook(result, translation.Global)
	}
	return result, nil
}
