package tui

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jeanpaul/phonebook/internal/directory"
	"github.com/jeanpaul/phonebook/internal/records"
)

// Menu actions, numbered as shown to the user.
const (
	ActionListPage = iota + 1
	ActionAdd
	ActionEdit
	ActionSearch
	ActionExit
)

var menuItems = []string{
	ActionListPage - 1: "Show a page of records",
	ActionAdd - 1:      "Add a new record",
	ActionEdit - 1:     "Edit a record",
	ActionSearch - 1:   "Search records by one or more fields",
	ActionExit - 1:     "Exit",
}

var searchItems = []string{
	"last name, first name, patronymic",
	"organization",
	"work phone",
	"personal (mobile) phone",
}

// Console is the numbered-menu front end of a directory.
type Console struct {
	dir *directory.Directory
	p   *prompter
	out io.Writer
	log *zap.Logger
}

func NewConsole(dir *directory.Directory, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{dir: dir, p: newPrompter(in, out), out: out, log: log}
}

// Run shows the menu until the user picks exit or the input ends.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, BannerStyle.Render("Welcome to the phone book!"))

	for {
		c.printMenu()
		choice, err := c.p.askInt("Choose an action:", func(s string) (int, error) {
			return ParseChoice(s, ActionListPage, ActionExit)
		})
		if err != nil {
			return endOfInput(err)
		}
		c.log.Debug("menu action", zap.Int("choice", choice))

		switch choice {
		case ActionListPage:
			err = c.listPage()
		case ActionAdd:
			err = c.add()
		case ActionEdit:
			err = c.edit()
		case ActionSearch:
			err = c.search()
		case ActionExit:
			return nil
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats a closed input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	for i, item := range menuItems {
		fmt.Fprintf(c.out, "%s %s\n", MenuNumberStyle.Render(fmt.Sprintf("%d -", i+1)), MenuItemStyle.Render(item))
	}
}

func (c *Console) info(msg string) {
	fmt.Fprintln(c.out, InfoStyle.Render(msg))
}

func (c *Console) printRecords(recs []records.Record) {
	if len(recs) > 0 {
		fmt.Fprintln(c.out, RenderTable(recs))
	}
}

func (c *Console) listPage() error {
	page, err := c.p.askInt("Page number:", ParseInt)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, PageHeaderStyle.Render(fmt.Sprintf("=====%d page=====", page)))
	recs := c.dir.ListPage(page)
	if len(recs) == 0 {
		c.info("Empty page")
		return nil
	}
	c.printRecords(recs)
	return nil
}

func (c *Console) askFields() (records.Fields, error) {
	questions := []string{
		"Last name:",
		"First name:",
		"Patronymic:",
		"Organization:",
		"Work phone:",
		"Personal phone:",
	}
	values := make([]string, 0, len(questions))
	for _, q := range questions {
		v, err := c.p.ask(q)
		if err != nil {
			return records.Fields{}, err
		}
		values = append(values, v)
	}
	f, _ := records.FieldsFromValues(values)
	return f, nil
}

func (c *Console) add() error {
	f, err := c.askFields()
	if err != nil {
		return err
	}
	r, err := c.dir.Add(f)
	if err != nil {
		return err
	}
	c.info(fmt.Sprintf("Record %d added", r.Position))
	return nil
}

func (c *Console) search() error {
	for i, item := range searchItems {
		fmt.Fprintf(c.out, "%s %s\n", MenuNumberStyle.Render(fmt.Sprintf("%d -", i+1)), MenuItemStyle.Render(item))
	}
	kind, err := c.p.askInt("Search by:", func(s string) (int, error) {
		return ParseChoice(s, int(directory.ByName), int(directory.ByPersonalPhone))
	})
	if err != nil {
		return err
	}

	q := directory.Query{Kind: directory.SearchKind(kind)}
	switch q.Kind {
	case directory.ByName:
		for _, field := range []struct {
			question string
			dst      *string
		}{
			{"Last name:", &q.LastName},
			{"First name:", &q.FirstName},
			{"Patronymic:", &q.Patronymic},
		} {
			if *field.dst, err = c.p.ask(field.question); err != nil {
				return err
			}
		}
	case directory.ByOrganization:
		if q.Organization, err = c.p.ask("Organization:"); err != nil {
			return err
		}
	case directory.ByWorkPhone:
		if q.Phone, err = c.p.ask("Work phone:"); err != nil {
			return err
		}
	case directory.ByPersonalPhone:
		if q.Phone, err = c.p.ask("Personal (mobile) phone:"); err != nil {
			return err
		}
	}

	r, ok := c.dir.Search(q)
	if !ok {
		c.info(fmt.Sprintf("No records with this %s", q.Kind))
		return nil
	}
	c.printRecords([]records.Record{r})
	return nil
}

func (c *Console) edit() error {
	for {
		lastName, err := c.p.ask("Last name of the record to edit (Enter to go back):")
		if err != nil {
			return err
		}
		if strings.TrimSpace(lastName) == "" {
			return nil
		}

		matches := c.dir.FindByLastName(lastName)
		if len(matches) == 0 {
			c.info("No records with this last name. Try again.")
			continue
		}
		c.printRecords(matches)

		done, err := c.pickAndEdit(matches)
		if err != nil || done {
			return err
		}
	}
}

// pickAndEdit asks for one of the presented positions and edits it. done is
// false when the user backs out with an empty answer.
func (c *Console) pickAndEdit(matches []records.Record) (done bool, err error) {
	for {
		answer, err := c.p.ask("No. of the record to edit from the table (Enter to go back):")
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(answer) == "" {
			return false, nil
		}

		position, err := ParseInt(answer)
		if err == nil && !slices.ContainsFunc(matches, func(r records.Record) bool { return r.Position == position }) {
			err = &InputError{Input: strings.TrimSpace(answer), Expect: "a No. from the table"}
		}
		var ie *InputError
		if errors.As(err, &ie) {
			c.info("No record with this number. Try again.")
			continue
		}

		f, err := c.askFields()
		if err != nil {
			return false, err
		}
		diff, err := c.dir.Edit(position, f)
		if err != nil {
			return false, err
		}
		c.info(fmt.Sprintf("Record %d updated", position))
		if diff != "" {
			fmt.Fprintln(c.out, DiffStyle.Render(diff))
		}
		return true, nil
	}
}
