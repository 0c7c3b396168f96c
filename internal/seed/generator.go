// Package seed populates a ledger with plausible sample data for demos
// and manual testing.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/schollz/progressbar/v3"

	"github.com/gastos-cli/gastos/internal/common"
	"github.com/gastos-cli/gastos/internal/model"
	"github.com/gastos-cli/gastos/internal/service"
)

// defaultCategories are seeded before any random ones so the sample
// data resembles a real household ledger.
var defaultCategories = []struct {
	name        string
	description string
}{
	{"Comida", "Groceries and eating out"},
	{"Transporte", "Public transport, fuel and parking"},
	{"Hogar", "Rent, utilities and household goods"},
	{"Ocio", "Entertainment and leisure"},
	{"Salud", "Health and pharmacy"},
}

// Options controls how much sample data the generator produces.
type Options struct {
	Categories   int // extra random categories beyond the defaults
	Transactions int
	Months       int   // how far back transaction dates spread
	Seed         int64 // non-zero for deterministic output
	Quiet        bool  // suppress the progress bar
}

// Generator seeds sample data through the ledger API so every record
// passes the same validation as user input.
type Generator struct {
	store service.Storage
	opts  Options
	rng   *rand.Rand
}

// NewGenerator creates a Generator over the given storage.
func NewGenerator(store service.Storage, opts Options) *Generator {
	seedVal := opts.Seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	if opts.Months <= 0 {
		opts.Months = 6
	}
	gofakeit.Seed(seedVal)
	return &Generator{
		store: store,
		opts:  opts,
		rng:   rand.New(rand.NewSource(seedVal)),
	}
}

// Run seeds categories and transactions per the generator's options.
func (g *Generator) Run(ctx context.Context) error {
	if g.opts.Transactions < 0 || g.opts.Categories < 0 {
		return common.NewValidationError("count", "cannot be negative")
	}

	categoryIDs, err := g.seedCategories(ctx, g.opts.Categories)
	if err != nil {
		return err
	}

	if err := g.seedTransactions(ctx, categoryIDs); err != nil {
		return err
	}

	common.LogInfo("seeded sample data", common.Fields{
		"categories":   len(categoryIDs),
		"transactions": g.opts.Transactions,
	})
	return nil
}

func (g *Generator) seedCategories(ctx context.Context, extra int) ([]int64, error) {
	var ids []int64

	for _, c := range defaultCategories {
		cat, err := g.store.CreateCategory(ctx, c.name, c.description)
		if err != nil {
			if common.IsValidation(err) {
				// Already present from an earlier run; reuse it.
				existing, lookupErr := g.store.GetCategoryByName(ctx, c.name)
				if lookupErr != nil {
					return nil, lookupErr
				}
				if existing != nil {
					ids = append(ids, existing.ID)
				}
				continue
			}
			return nil, err
		}
		ids = append(ids, cat.ID)
	}

	for i := 0; i < extra; i++ {
		name := fmt.Sprintf("%s %s", gofakeit.BuzzWord(), gofakeit.NounAbstract())
		cat, err := g.store.CreateCategory(ctx, name, gofakeit.Sentence(6))
		if err != nil {
			if common.IsValidation(err) {
				continue // rare duplicate fake name, just skip it
			}
			return nil, err
		}
		ids = append(ids, cat.ID)
	}

	return ids, nil
}

func (g *Generator) seedTransactions(ctx context.Context, categoryIDs []int64) error {
	var bar *progressbar.ProgressBar
	if !g.opts.Quiet {
		bar = progressbar.Default(int64(g.opts.Transactions), "seeding transactions")
	}

	today := time.Now()
	for i := 0; i < g.opts.Transactions; i++ {
		typ := model.TypeExpense
		amount := gofakeit.Price(1, 500)
		if g.rng.Intn(5) == 0 { // roughly one income per five entries
			typ = model.TypeIncome
			amount = gofakeit.Price(500, 5000)
		}

		var categoryID *int64
		if len(categoryIDs) > 0 && g.rng.Intn(10) != 0 { // ~10% uncategorized
			id := categoryIDs[g.rng.Intn(len(categoryIDs))]
			categoryID = &id
		}

		daysBack := g.rng.Intn(g.opts.Months * 30)
		date := today.AddDate(0, 0, -daysBack)

		_, err := g.store.CreateTransaction(ctx, typ, amount, categoryID, gofakeit.ProductName(), date)
		if err != nil {
			return err
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return nil
}
