// Package symlink implements the symlink declarations of a package and
// the transitions between their states.
//
// A declaration is one line of a package's declaration file:
//
//	SOURCE
//	SOURCE = DESTINATION
//
// The first form links the whole package directory to SOURCE. The second
// links the file SOURCE, relative to the package directory, to
// DESTINATION. A leading "~/" in either path is expanded to $HOME.
//
// Every Symlink carries a Status. Failures while resolving, creating or
// removing a link never surface as Go errors; they become an Error status
// on the symlink they happened to, so one bad declaration never stops the
// others from being processed.
//
// Unlink only removes a destination that is a symlink pointing at the
// declared source. Anything else at the destination is left alone and the
// symlink reports that it was not created by home-symlink.
package symlink
