package user

// seedUsers is the fixed data set the reset operation restores. Ten users,
// ids 1-10, msisdns 79161234001-79161234010.
var seedUsers = []User{
	{ID: 1, Name: strptr("Alice Smith"), MSISDN: "79161234001"},
	{ID: 2, Name: strptr("John Doe"), MSISDN: "79161234002"},
	{ID: 3, Name: strptr("Buffalo Bill"), MSISDN: "79161234003"},
	{ID: 4, Name: strptr("Charlie Brown"), MSISDN: "79161234004"},
	{ID: 5, Name: strptr("Clark Peterson"), MSISDN: "79161234005"},
	{ID: 6, Name: strptr("Diana Prince"), MSISDN: "79161234006"},
	{ID: 7, Name: strptr("Eve Turner"), MSISDN: "79161234007"},
	{ID: 8, Name: strptr("Frank Wilson"), MSISDN: "79161234008"},
	{ID: 9, Name: strptr("Grace Lee"), MSISDN: "79161234009"},
	{ID: 10, Name: strptr("Henry Ford"), MSISDN: "79161234010"},
}

// SeedUsers returns fresh copies of the seed data. Every call allocates new
// records, so mutating a returned user never affects the seed or any other
// consumer.
func SeedUsers() []User {
	return CloneAll(seedUsers)
}

func strptr(s string) *string {
	return &s
}
