// Package prompt reads the interactive answers "apiscaffold init" needs: the API
// base URL and, for every folder or file that already exists, what to do with it.
// Menus are plain numbered lists on the terminal. A session without a terminal
// fails with ErrInteractionUnavailable instead of guessing, since guessing could
// pick a destructive option.
package prompt
