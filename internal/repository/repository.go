// Package repository mediates between the stores and the key-value
// persistence layer. Each repository owns one storage key and the JSON
// encoding of the records kept under it.
package repository

// Storage keys. The names are inherited from the data files this app shares
// its format with; changing them would orphan existing data.
const (
	SessionKey = "ticketapp_session"
	UsersKey   = "dst_users"
	TicketsKey = "dst_tickets"
)
