// Package anchor aligns anchor lines: single declarations recognised by a
// fixed prefix, such as the oh-my-zsh `plugins=(git macos)` line, whose value
// is a list of tokens.
//
// Align rewrites only the anchor line so its tokens are exactly the desired
// ones, deduplicated, in the caller's order. How a value is tokenized and
// rendered is decided by a Format; ShellArray and Delimited cover shell
// arrays and separator-joined lists.
package anchor
