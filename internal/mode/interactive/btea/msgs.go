// ABOUTME: Custom tea.Msg types for the terminal simulator
// ABOUTME: Timer expiry, cursor blink, and config reload results

package btea

// timerFiredMsg reports that the tea clock timer with this id expired.
type timerFiredMsg struct{ id uint64 }

// cursorBlinkMsg toggles cursor visibility.
type cursorBlinkMsg struct{}

// ReloadMsg carries deps rebuilt after a watched file changed.
type ReloadMsg struct{ Deps AppDeps }

// ReloadErrorMsg reports a failed reload; the running deps stay in place.
type ReloadErrorMsg struct{ Err error }
