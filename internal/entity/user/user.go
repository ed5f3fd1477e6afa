package user

// Record is one registered account. ID is the opaque identity embedded in
// issued tokens.
type Record struct {
	ID           string
	Login        string
	PasswordHash []byte
	Salt         []byte
}
