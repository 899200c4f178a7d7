// Package clipboard places text on the system clipboard by trying an ordered
// chain of strategies until one succeeds. The default chain tries the native
// clipboard API when a graphical display is present, then falls back to an
// operating-system specific command fed through standard input.
package clipboard
