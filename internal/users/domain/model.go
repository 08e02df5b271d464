package domain

// Profile is the user document persisted in Firestore. The document key is
// the identity uid generated by Firebase Authentication; UIDCooperative
// carries the tenant the record belongs to.
type Profile struct {
	Email          string  `firestore:"email"`
	Name           string  `firestore:"name"`
	LastName       string  `firestore:"lastName"`
	Phone          *string `firestore:"phone"`
	Address        *string `firestore:"address"`
	Card           *string `firestore:"card"`
	Photo          *string `firestore:"photo"`
	IsBlocked      *bool   `firestore:"isBlocked"`
	Rol            *string `firestore:"rol"`
	UID            string  `firestore:"uid"`
	UIDCooperative string  `firestore:"uidCooperative"`
}

// CreateUserRequest represents data needed to create a new user.
// Email, Password, Name and LastName are required; everything else is
// forwarded to the profile document as-is.
type CreateUserRequest struct {
	Email     string
	Password  string
	Name      string
	LastName  string
	Phone     *string
	Address   *string
	Card      *string
	Photo     *string
	IsBlocked *bool
	Rol       *string
}

// UpdateUserRequest represents data for updating a user. Every field is
// optional; nil means the caller did not supply it.
type UpdateUserRequest struct {
	Email    *string
	Password *string
	Name     *string
	LastName *string
	Phone    *string
	Address  *string
	Card     *string
	Photo    *string
}

// IdentityParams is what gets sent to the identity store on creation.
// Phone is only applied when non-empty.
type IdentityParams struct {
	Email       string
	Password    string
	DisplayName string
	Phone       string
}

// IdentityUpdate is a sparse identity-store update. DisplayName is always
// set; nil pointers leave the corresponding field untouched.
type IdentityUpdate struct {
	DisplayName string
	Email       *string
	Phone       *string
	Password    *string
}

// DisplayName combines the given and last names the way the identity store
// stores them.
func DisplayName(name, lastName string) string {
	return name + " " + lastName
}
