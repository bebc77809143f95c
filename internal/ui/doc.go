// Package ui runs the interactive selection loop on the terminal's stderr.
//
// A Session repeats one cycle until the user commits or cancels:
//   - pending resize events from backend.Watcher are applied to the Renderer
//     without blocking;
//   - the Renderer lays out the query line and the matching entries, wrapped
//     at min(width, columns) and limited to the configured number of rows;
//   - one byte is read from the keyboard and handed to Interpret, which edits
//     the query, moves the cursor or ends the session;
//   - when the query changed the menu is refiltered, and the frame is erased
//     so the next one starts from the same screen position.
//
// Menu data (entries, the query buffer, ranking) lives in internal/ui/state.
// The loop never leaves a frame on screen: every return path erases it first,
// so the selection printed to stdout lands on a clean line.
package ui
