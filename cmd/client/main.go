package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/rtlite/movieworld/config"
	"github.com/rtlite/movieworld/internal/client/api"
	"github.com/rtlite/movieworld/internal/client/forms"
	"github.com/rtlite/movieworld/internal/client/gateway"
	"github.com/rtlite/movieworld/internal/client/localstore"
)

const usage = `usage: client <command> [flags]

commands:
  register  -name -email -password -confirm
  login     -email -password
  logout
  news      -title -text [-name -email -link]
  order     -movie -price -quantity -name -email -phone -address -payment
  whoami
  health
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1], os.Args[2:], logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(command string, args []string, logger *zap.Logger) error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}

	gw, err := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return err
	}
	store, err := localstore.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	remote := api.New(gw)
	controller := forms.NewController(remote, store, logger)
	ctx := context.Background()

	switch command {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		confirm := fs.String("confirm", "", "password confirmation")
		fs.Parse(args)
		session, note := controller.Register(ctx, forms.RegisterInput{
			Name: *name, Email: *email, Password: *password, PasswordConfirm: *confirm,
		})
		printNotification(note)
		if session != nil {
			fmt.Printf("signed in as %s <%s>\n", session.Name, session.Email)
		}

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)
		session, note := controller.Login(ctx, forms.LoginInput{Email: *email, Password: *password})
		printNotification(note)
		if session != nil {
			fmt.Printf("signed in as %s <%s>\n", session.Name, session.Email)
		}

	case "logout":
		printNotification(controller.Logout(ctx))

	case "news":
		fs := flag.NewFlagSet("news", flag.ExitOnError)
		name := fs.String("name", "", "your name (optional)")
		email := fs.String("email", "", "your email (optional)")
		title := fs.String("title", "", "headline")
		text := fs.String("text", "", "story text")
		link := fs.String("link", "", "source link (optional)")
		fs.Parse(args)
		printNotification(controller.SuggestNews(ctx, forms.NewsInput{
			Name: *name, Email: *email, Title: *title, Text: *text, Link: *link,
		}))

	case "order":
		fs := flag.NewFlagSet("order", flag.ExitOnError)
		movie := fs.String("movie", "", "movie name")
		price := fs.Float64("price", 0, "unit price")
		quantity := fs.Int("quantity", 1, "quantity (1-10)")
		name := fs.String("name", "", "customer name")
		email := fs.String("email", "", "customer email")
		phone := fs.String("phone", "", "customer phone")
		address := fs.String("address", "", "delivery address")
		payment := fs.String("payment", "", "payment method")
		fs.Parse(args)
		printNotification(controller.Purchase(ctx, forms.PurchaseInput{
			MovieName: *movie, MoviePrice: *price, Quantity: *quantity,
			CustomerName: *name, CustomerEmail: *email, CustomerPhone: *phone,
			DeliveryAddress: *address, PaymentMethod: *payment,
		}))

	case "whoami":
		session, err := store.Session()
		if err != nil {
			return err
		}
		if session == nil {
			fmt.Println("not signed in")
			return nil
		}
		fmt.Printf("%s <%s>\n", session.Name, session.Email)

	case "health":
		resp, err := remote.Health(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("status=%s db=%s timestamp=%s\n", resp.Status, resp.DB, resp.Timestamp)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	return nil
}

func printNotification(note forms.Notification) {
	if note.Kind == forms.KindError {
		fmt.Println("✗", note.Message)
		return
	}
	fmt.Println("✓", note.Message)
}
