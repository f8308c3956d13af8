// Package oracle defines the membership-oracle boundary the learner
// depends on, plus three adapters that satisfy it:
//
//   - Func wraps a plain Go function, for in-process mocks and tests.
//   - Replay serves a fixed recorded-trace map deterministically, for
//     dependency-free learner tests.
//   - Socket dials a fresh TCP connection per call against a
//     newline-delimited, line-reply protocol (the FTP-like teacher SUL
//     shape described in spec §6), absorbing every transport failure
//     into a trailing run of OFF outputs. AskContext additionally bounds
//     a single call's wall-clock time with a caller-supplied
//     context.Context; Ask is AskContext(context.Background(), word).
//
// The learner itself only ever sees the Oracle interface — ask(word) ->
// outputs — never a concrete adapter. Socket handling, timing, banner
// consumption, and connection lifecycle live entirely in Socket and are
// explicitly out of scope for the core learning algorithm (spec §1).
//
//	go get github.com/arnegreen/mealylearn/oracle
package oracle
