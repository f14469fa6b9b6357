package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when the account does not exist so a
// miss costs the same bcrypt work as a wrong password.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("lanaapp-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
})

// doPasswordsMatch compares a plaintext password with a stored bcrypt hash.
// The salt and cost are read from the hash itself; the comparison is
// constant-time.
func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}
