package shellexec

// Sink receives trace lines. *runlog.Log satisfies it.
type Sink interface {
	Logf(format string, args ...interface{})
}

// Trace appends the fixed trace record of one invocation to the sink:
// the command string, both raw stream captures, the error description
// or an explicit "none" marker, then a summary with the resolved
// success flag and message. The record is complete on success too, so
// a run can be replayed post-mortem from the log alone.
func Trace(sink Sink, command string, o Outcome) {
	sink.Logf("command: %s", command)
	sink.Logf("stdout: %s", o.Stdout)
	sink.Logf("stderr: %s", o.Stderr)
	if o.Err != nil {
		sink.Logf("error: %s", o.Err.Error())
	} else {
		sink.Logf("error: none")
	}
	sink.Logf("result: success=%v, message=%s", o.Success(), o.Message())
}
