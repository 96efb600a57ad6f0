package interfaces

// ILinkLauncher opens the payment URL in a separate context when it can.
// The boolean only reports whether a separate context was obtained; the
// checkout flow proceeds identically either way.
type ILinkLauncher interface {
	Open(url string) bool
}
