package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"shop-catalog/internal/catalog"
	"shop-catalog/internal/config"
	"shop-catalog/internal/domain"
	"shop-catalog/internal/fixture"
	"shop-catalog/internal/validation"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	ErrUsage           = errors.New("usage: catalog [flags] search <query> | sort <rule> | rating [id] | show <id> | review <id> <author> <service> <price> <value> <quality> [comment] | validate --email <e> [--phone <p>] --password <p>")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// App runs catalog commands against a loaded fixture
type App struct {
	config *config.Config
	logger *zap.Logger
	out    io.Writer
}

// New creates a new App
func New(cfg *config.Config, logger *zap.Logger, out io.Writer) *App {
	return &App{config: cfg, logger: logger, out: out}
}

// Run executes the command named by args[0]
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug("Running command", zap.String("command", cmd), zap.Strings("args", rest))

	if cmd == "validate" {
		return a.validate(rest)
	}

	products, err := fixture.NewLoader(a.logger).Load(a.config.Catalog.Fixture)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	switch cmd {
	case "search":
		query := ""
		if len(rest) > 0 {
			query = rest[0]
		}
		found := catalog.Search(products, query)
		a.logger.Info("Search completed", zap.String("query", query), zap.Int("matches", len(found)))
		return a.printProducts(found)

	case "sort":
		if len(rest) != 1 {
			return ErrUsage
		}
		rule := catalog.ParseSortRule(rest[0])
		if !rule.Valid() {
			a.logger.Warn("Unrecognized sort rule, keeping catalog order", zap.String("rule", rest[0]))
		}
		sorter := catalog.NewSorter(a.config.Catalog.Language())
		return a.printProducts(sorter.Sort(products, rule))

	case "rating":
		if len(rest) == 0 {
			return a.printProducts(products)
		}
		p, err := find(products, rest[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "%s\t%.2f\n", p.ID, p.AverageRating())
		return err

	case "show":
		if len(rest) != 1 {
			return ErrUsage
		}
		p, err := find(products, rest[0])
		if err != nil {
			return err
		}
		_, err = io.WriteString(a.out, p.FullInformation())
		return err

	case "review":
		return a.review(products, rest)

	default:
		return ErrUsage
	}
}

// review attaches a new review to a product and prints the new average
func (a *App) review(products []*domain.Product, args []string) error {
	if len(args) < 6 {
		return ErrUsage
	}

	p, err := find(products, args[0])
	if err != nil {
		return err
	}

	var scores [4]float64
	for i, raw := range args[2:6] {
		scores[i], err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: score %q is not a number", ErrInvalidInput, raw)
		}
	}

	comment := ""
	if len(args) > 6 {
		comment = args[6]
	}

	r := domain.NewReview(domain.NewReviewID(), args[1], comment, scores[0], scores[1], scores[2], scores[3])
	p.AddReview(r)

	a.logger.Info("Review added",
		zap.String("product_id", p.ID),
		zap.String("review_id", r.ID),
		zap.Float64("score", r.Score()),
	)

	_, err = fmt.Fprintf(a.out, "%s\t%s\t%.2f\n", p.ID, r.ID, p.AverageRating())
	return err
}

func (a *App) validate(args []string) error {
	fs := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var contact validation.Contact
	fs.StringVar(&contact.Email, "email", "", "e-mail address")
	fs.StringVar(&contact.Phone, "phone", "", "phone number")
	fs.StringVar(&contact.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	err := validation.Struct(contact)
	if err == nil {
		_, err = fmt.Fprintln(a.out, "ok")
		return err
	}

	fields := validation.FormatValidationErrors(err)
	for _, f := range fields {
		a.logger.Debug("Field rejected", zap.String("field", f.Field), zap.String("message", f.Message))
		if _, err := fmt.Fprintf(a.out, "%s\t%s\n", f.Field, f.Message); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: %d field(s) rejected", ErrInvalidInput, len(fields))
}

func (a *App) printProducts(products []*domain.Product) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tNAME\tBRAND\tPRICE\tQTY\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%d\t%.2f\n",
			p.ID, p.Kind, p.Name, p.Brand, p.Price, p.Quantity, p.AverageRating())
	}
	return w.Flush()
}

func find(products []*domain.Product, id string) (*domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}
