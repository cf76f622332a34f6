// Package editor provides a Bubble Tea markdown editor component backed by
// the buffer package, with a formatting toolbar driven by the format
// package.
//
// The Model owns its buffer. Formatter key bindings and the toolbar palette
// apply format edits as single undoable changes; image uploads run as
// commands and land through a placeholder; pasting a bare URL on an empty
// line offers to turn it into an embed tag.
package editor
