package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/ingest"
)

// Prompter renders the recipe prompt without calling the model.
type Prompter interface {
	Prompt(ctx context.Context, prefs pantry.Preferences) (string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Now      func() time.Time
	Items    pantry.ItemService
	Receipts pantry.ReceiptService
	Ingester *ingest.Ingester
	Chef     pantry.Chef
	Prompter Prompter
	Tokens   pantry.TokenCounter
	Resolver pantry.Resolver
	Writer   pantry.RecipeWriter
	Renderer pantry.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log adapter calls to stderr"`

	Scan     ScanCmd     `cmd:"" help:"Scan a receipt photo into the pantry"`
	List     ListCmd     `cmd:"" help:"Show the pantry inventory"`
	Add      AddCmd      `cmd:"" help:"Add an item by hand"`
	Inc      IncCmd      `cmd:"" help:"Increase an item's quantity by one"`
	Dec      DecCmd      `cmd:"" help:"Decrease an item's quantity by one"`
	Remove   RemoveCmd   `cmd:"" help:"Remove an item from the pantry"`
	Recipes  RecipesCmd  `cmd:"" help:"Suggest recipes from what is in the pantry"`
	Receipts ReceiptsCmd `cmd:"" help:"List scanned receipts"`
	Resolve  ResolveCmd  `cmd:"" help:"Look up an unclear receipt line on the web"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Image string `arg:"" help:"Receipt image (JPEG, PNG or WebP)"`
	Force bool   `short:"f" help:"Merge even if this receipt was scanned before"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only show items in this category"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name     string `arg:"" help:"Item name"`
	Quantity int    `arg:"" optional:"" default:"1" help:"Quantity to add"`
	Category string `short:"c" default:"Other" help:"Item category"`
}

// IncCmd is the "inc" subcommand.
type IncCmd struct {
	ID int64 `arg:"" help:"Item ID"`
}

// DecCmd is the "dec" subcommand.
type DecCmd struct {
	ID int64 `arg:"" help:"Item ID"`
}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	ID int64 `arg:"" help:"Item ID"`
}

// RecipesCmd is the "recipes" subcommand.
type RecipesCmd struct {
	Pace    string `short:"p" default:"fast" enum:"fast,medium,slow" help:"Time available: fast, medium or slow"`
	Craving string `short:"c" help:"What you feel like eating (defaults to the meal of the day)"`
	People  int    `short:"n" default:"2" help:"Number of servings"`
	Save    string `short:"s" help:"Write recipe cards as markdown into this directory"`
	Prompt  bool   `help:"Print the prompt and its token count without calling the model"`
	Pretty  bool   `help:"Render recipe cards as styled Markdown"`
}

// ReceiptsCmd is the "receipts" subcommand.
type ReceiptsCmd struct{}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Text string `arg:"" help:"Receipt line to look up"`
}
