package sqlite

// Schema DDL for the Books table. IF NOT EXISTS keeps EnsureSchema
// idempotent across runs.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS Books (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    Title TEXT NOT NULL,
    Author TEXT NOT NULL,
    YearPublished INTEGER NOT NULL
);`
)

// Queries against the Books table.
const (
	selectBooks = `SELECT Id, Title, Author, YearPublished FROM Books ORDER BY Id`
	insertBook  = `INSERT INTO Books (Title, Author, YearPublished) VALUES (?, ?, ?)`
	deleteBook  = `DELETE FROM Books WHERE Id = ?`
)

// schemaDDL lists all statements EnsureSchema runs, in order.
var schemaDDL = []string{
	createBooks,
}
