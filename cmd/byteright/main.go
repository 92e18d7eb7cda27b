package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"byteright/internal/app"
	"byteright/internal/clipper"
	"byteright/internal/config"
	"byteright/internal/database"
	"byteright/internal/fridge"
	"byteright/internal/ingredient"
	"byteright/internal/llm"
	"byteright/internal/logger"
	"byteright/internal/metrics"
	"byteright/internal/planner"
	"byteright/internal/recipe"
	"byteright/internal/shopping"
	"byteright/internal/spoonacular"
	"byteright/internal/user"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	db, err := database.NewDB(cfg.DatabasePath, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	catalog := ingredient.DefaultCatalog()
	if cfg.IngredientCatalogPath != "" {
		catalog, err = ingredient.LoadCatalog(cfg.IngredientCatalogPath)
		if err != nil {
			return err
		}
	}

	users := user.NewRepository(db.SQL)
	recipes := recipe.NewRepository(db.SQL)
	plans := planner.NewRepository(db.SQL)
	lists := shopping.NewRepository(db.SQL)
	fridgeRepo := fridge.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	spoon := spoonacular.NewClient(cfg.SpoonacularAPIKey, cfg.SpoonacularBaseURL, recipes, log)

	sources := []planner.Source{spoon}
	if cfg.GeminiAPIKey != "" {
		textGen, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		if closer, ok := textGen.(llm.Closer); ok {
			defer closer.Close()
		}
		sources = append(sources, planner.NewAISource(textGen))
	}
	sources = append(sources, planner.NewLocalSource(recipes, nil))

	application := app.NewApp(app.Deps{
		Users:      users,
		Recipes:    recipes,
		Plans:      plans,
		Lists:      lists,
		Fridge:     fridgeRepo,
		PlanSource: planner.NewFallback(log, sources...),
		Searcher:   spoon,
		Clip:       clipper.NewClipper(),
		Metrics:    metricsStore,
		Catalog:    catalog,
		Log:        log,
	})

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		return runPlan(ctx, application, users, cfg, os.Args[2:])
	case "shopping":
		return runShopping(ctx, application, users, cfg, os.Args[2:])
	case "search":
		return runSearch(ctx, application, users, cfg, os.Args[2:])
	case "fridge":
		return runFridge(ctx, fridgeRepo, users, cfg, os.Args[2:])
	case "import":
		return runImport(ctx, application, os.Args[2:])
	case "metrics":
		return runMetrics(ctx, metricsStore, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
		return nil
	}
}

func ensureUser(ctx context.Context, users *user.Repository, cfg *config.Config, username string) (*user.User, error) {
	return users.Ensure(ctx, username, cfg.DefaultWeeklyBudget)
}

func runPlan(ctx context.Context, application *app.App, users *user.Repository, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	username := fs.String("user", "default", "User the plan belongs to")
	budget := fs.Float64("budget", 0, "Weekly budget override")
	fs.Parse(args)

	u, err := ensureUser(ctx, users, cfg, *username)
	if err != nil {
		return err
	}

	plan, err := application.GenerateMealPlan(ctx, u.ID, time.Now(), *budget)
	if err != nil {
		return err
	}

	fmt.Printf("Meal plan for week of %s (source: %s, budget £%.2f, estimated £%.2f)\n\n",
		plan.WeekStart.Format("Mon 2 Jan"), plan.Source, plan.BudgetTarget, plan.TotalEstimatedCost)

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	current := -1
	for _, item := range plan.Items {
		if item.DayOfWeek != current {
			current = item.DayOfWeek
			fmt.Printf("%s\n", days[current])
		}
		fmt.Printf("  %-10s %s (£%.2f)\n", item.MealType, item.RecipeTitle, item.EstimatedCost)
	}
	fmt.Printf("\nPlan #%d saved. Run 'byteright shopping -user %s' for the shopping list.\n", plan.ID, *username)
	return nil
}

func runShopping(ctx context.Context, application *app.App, users *user.Repository, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("shopping", flag.ExitOnError)
	username := fs.String("user", "default", "User the list belongs to")
	planID := fs.Int64("plan", 0, "Plan ID (defaults to this week's plan)")
	fs.Parse(args)

	u, err := ensureUser(ctx, users, cfg, *username)
	if err != nil {
		return err
	}

	id := *planID
	if id == 0 {
		plan, err := application.PlanForWeek(ctx, u.ID, time.Now())
		if err != nil {
			return fmt.Errorf("no plan for this week yet; run 'byteright plan' first: %w", err)
		}
		id = plan.ID
	}

	list, err := application.BuildShoppingList(ctx, u.ID, id)
	if err != nil {
		return err
	}

	fmt.Printf("Shopping list for plan #%d (recipes £%.2f, items £%.2f)\n",
		list.MealPlanID, list.EstimatedTotal, list.CalculatedTotal)

	sections := []ingredient.Category{
		ingredient.CategoryFreshProduce,
		ingredient.CategoryFridgeFreezer,
		ingredient.CategoryStoreCupboard,
		ingredient.CategoryOther,
	}
	for _, section := range sections {
		printed := false
		for _, item := range list.Items {
			if item.Category != section {
				continue
			}
			if !printed {
				fmt.Printf("\n%s\n", strings.ReplaceAll(string(section), "_", " "))
				printed = true
			}
			qty := item.Quantity
			if item.Unit != "" {
				qty += item.Unit
			}
			fmt.Printf("  [ ] %-30s %-12s £%.2f\n", item.IngredientName, qty, item.EstimatedPrice)
		}
	}
	return nil
}

func runSearch(ctx context.Context, application *app.App, users *user.Repository, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	username := fs.String("user", "default", "User searching (for -fridge)")
	fromFridge := fs.Bool("fridge", false, "Search with the fridge contents")
	diet := fs.String("diet", "", "Diet filter, e.g. vegetarian")
	maxTime := fs.Int("max-time", 0, "Maximum total minutes")
	fs.Parse(args)

	q := recipe.Query{
		Ingredients: fs.Args(),
		Diet:        *diet,
		MaxTime:     *maxTime,
	}

	var matches []recipe.Match
	var err error
	if *fromFridge {
		u, uerr := ensureUser(ctx, users, cfg, *username)
		if uerr != nil {
			return uerr
		}
		matches, err = application.SearchFromFridge(ctx, u.ID, q)
	} else {
		matches, err = application.SearchRecipes(ctx, q)
	}
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("No recipes matched.")
		return nil
	}
	for _, m := range matches {
		fmt.Printf("%3d%%  %-30s uses: %s", m.MatchPercentage, m.Recipe.Title, strings.Join(m.UsedIngredients, ", "))
		if len(m.MissedItems) > 0 {
			fmt.Printf("  (missing: %s)", strings.Join(m.MissedItems, ", "))
		}
		fmt.Println()
	}
	return nil
}

func runFridge(ctx context.Context, repo *fridge.Repository, users *user.Repository, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("fridge", flag.ExitOnError)
	username := fs.String("user", "default", "User the fridge belongs to")
	add := fs.String("add", "", "Item to add")
	qty := fs.String("qty", "", "Quantity for -add")
	expiry := fs.String("expiry", "", "Expiry date for -add (YYYY-MM-DD)")
	remove := fs.Int64("remove", 0, "Item ID to remove")
	fs.Parse(args)

	u, err := ensureUser(ctx, users, cfg, *username)
	if err != nil {
		return err
	}

	switch {
	case *add != "":
		item := fridge.Item{UserID: u.ID, Name: *add, Quantity: *qty}
		if *expiry != "" {
			t, err := time.ParseInLocation("2006-01-02", *expiry, time.UTC)
			if err != nil {
				return fmt.Errorf("invalid -expiry: %w", err)
			}
			item.Expiry = t
		}
		if _, err := repo.Add(ctx, &item); err != nil {
			return err
		}
		fmt.Printf("Added %s.\n", item.Name)
	case *remove != 0:
		if err := repo.Remove(ctx, u.ID, *remove); err != nil {
			return err
		}
		fmt.Println("Removed.")
	default:
		items, err := repo.List(ctx, u.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("The fridge is empty.")
			return nil
		}
		for _, item := range items {
			line := fmt.Sprintf("%4d  %-25s %s", item.ID, item.Name, item.Quantity)
			if !item.Expiry.IsZero() {
				line += "  expires " + item.Expiry.Format("2006-01-02")
			}
			fmt.Println(line)
		}
	}
	return nil
}

func runImport(ctx context.Context, application *app.App, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: byteright import <url>")
	}

	rec, err := application.ImportRecipe(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Printf("Imported %q as recipe #%d (%d ingredients).\n", rec.Title, rec.ID, len(rec.Ingredients))
	return nil
}

func runMetrics(ctx context.Context, store *metrics.Store, args []string) error {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	days := fs.Int("days", 7, "How many days to summarize")
	cleanup := fs.Int("cleanup", 0, "Remove runs older than N days")
	fs.Parse(args)

	if *cleanup > 0 {
		if err := store.Cleanup(ctx, *cleanup); err != nil {
			return err
		}
		fmt.Printf("Removed generation runs older than %d days.\n", *cleanup)
		return nil
	}

	summaries, err := store.GetDailySummaries(ctx, *days)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No generation runs recorded.")
		return nil
	}
	for _, s := range summaries {
		fmt.Printf("%s  %-12s %3d runs  avg %.0fms\n", s.Date, s.Source, s.Runs, s.AvgLatencyMS)
	}
	return nil
}

func printUsage() {
	fmt.Println("Usage: byteright <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan       Generate this week's meal plan")
	fmt.Println("  shopping   Build the shopping list for a plan")
	fmt.Println("  search     Find recipes by ingredients")
	fmt.Println("  fridge     Manage fridge contents")
	fmt.Println("  import     Import a recipe from a URL")
	fmt.Println("  metrics    Show or clean up generation metrics")
}
