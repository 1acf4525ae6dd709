package model

// AuthInfo is the identity the JWT middleware attaches to a request.
type AuthInfo struct {
	MemberID uint64
	Name     string
	Role     string
}
