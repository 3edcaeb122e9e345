// Package shell implements the interactive menu front end for the catalog.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Catalog is the subset of the record store the shell drives.
type Catalog interface {
	Add(ctx context.Context, title, author string, yearPublished int) (types.Book, error)
	Remove(ctx context.Context, id string) (bool, error)
	Get(id string) (types.Book, error)
	List() []types.Book
}

// Menu choices.
const (
	choiceAdd    = "1"
	choiceGet    = "2"
	choiceList   = "3"
	choiceRemove = "4"
	choiceExit   = "5"
)

const menu = `
Choose an action:
1. Add a book
2. Find a book by ID
3. Show all books
4. Remove a book by ID
5. Exit
`

// errEOF signals that input ended mid-prompt; Run treats it like exit.
var errEOF = errors.New("end of input")

// Shell reads menu choices from in and writes results to out.
type Shell struct {
	catalog Catalog
	in      *bufio.Scanner
	out     io.Writer
}

// New returns a shell over the given catalog and streams.
func New(catalog Catalog, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until the user exits, input ends, or ctx is
// canceled. A failed catalog operation is reported and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menu)
		choice, err := s.readLine()
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case choiceAdd:
			err = s.add(ctx)
		case choiceGet:
			err = s.get()
		case choiceList:
			s.list()
		case choiceRemove:
			err = s.remove(ctx)
		case choiceExit:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select an action from the menu.")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish maps end of input to a clean exit.
func (s *Shell) finish(err error) error {
	if errors.Is(err, errEOF) {
		return nil
	}
	return err
}

func (s *Shell) add(ctx context.Context) error {
	title, err := s.prompt("Enter the title: ")
	if err != nil {
		return err
	}
	author, err := s.prompt("Enter the author: ")
	if err != nil {
		return err
	}
	year, err := s.promptYear()
	if err != nil {
		return err
	}

	book, err := s.catalog.Add(ctx, title, author, year)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "Book added with ID '%s'.\n", book.ID)
	return nil
}

func (s *Shell) get() error {
	id, err := s.prompt("Enter the book ID to find: ")
	if err != nil {
		return err
	}

	book, err := s.catalog.Get(id)
	switch {
	case errors.Is(err, types.ErrNotFound):
		fmt.Fprintf(s.out, "Book with ID '%s' not found.\n", id)
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Found: %s by %s (%d)\n", book.Title, book.Author, book.YearPublished)
	}
	return nil
}

func (s *Shell) list() {
	books := s.catalog.List()
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books.")
		return
	}
	fmt.Fprintln(s.out, "All books:")
	for _, b := range books {
		fmt.Fprintln(s.out, b.String())
	}
}

func (s *Shell) remove(ctx context.Context) error {
	id, err := s.prompt("Enter the book ID to remove: ")
	if err != nil {
		return err
	}

	removed, err := s.catalog.Remove(ctx, id)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	case removed:
		fmt.Fprintf(s.out, "Book with ID '%s' removed.\n", id)
	default:
		fmt.Fprintf(s.out, "Book with ID '%s' not found; nothing removed.\n", id)
	}
	return nil
}

// promptYear re-prompts until the input parses as an integer.
func (s *Shell) promptYear() (int, error) {
	line, err := s.prompt("Enter the year published: ")
	for err == nil {
		year, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return year, nil
		}
		line, err = s.prompt("Please enter a valid year: ")
	}
	return 0, err
}

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.readLine()
}

func (s *Shell) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return "", errEOF
}
