package entity

// Account is a login record behind a principal. The password hash never leaves
// the persistence boundary except through this struct.
type Account struct {
	Principal
	PasswordHash string
}
