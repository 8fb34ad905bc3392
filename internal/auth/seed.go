package auth

// seededAccount is a fixed demo account known at build time. The plaintext
// password exists only here; it is digested once per client install and never
// persisted.
type seededAccount struct {
	Username    string
	DisplayName string
	Password    string
}

var seededAccounts = []seededAccount{
	{Username: "admin", DisplayName: "Administrator", Password: "1234"},
	{Username: "user1", DisplayName: "User 1", Password: "password"},
}
