// Package main is the interactive shell for the local marketplace store,
// useful for poking at a data directory without the UI shell.
package main

import (
	"bufio"
	"cmp"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lmartins/servicofacil/internal/logger"
	"github.com/lmartins/servicofacil/internal/models"
	"github.com/lmartins/servicofacil/internal/repository"
	"github.com/lmartins/servicofacil/internal/store"
)

var (
	version   string
	buildDate string
)

const helpText = `Available commands:
  help                       show this help
  login <user> <password>    verify credentials
  passwd <user> <password>   change a password
  resetpw                    reset the admin password to the default
  rename <user>              rename the active user
  profile                    show the profile
  set <field> <value...>     set a profile field (name, email, phone,
                             address, city, postal, birth, bio)
  settings                   show the settings
  toggle                     toggle provider mode
  services [type]            list the catalog (1=electrician 2=plumber
                             3=photographer 4=mason)
  mine                       list my provider services
  add <name> | <description> [| <type> [| <price> [| <time>]]]
  edit <id> <name> | <description> [| <type> [| <price> [| <time>]]]
                             update a provider service; empty segments
                             leave the field unchanged
  rm <id>                    delete a provider service
  wipe                       delete account data (profile + settings)
  dump                       dump every collection
  reset                      wipe and reseed everything
  exit                       quit`

// repl runs the interactive loop over the repository.
func repl(repo *repository.Repository) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("servicofacil> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println(helpText)
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <user> <password>")
				continue
			}
			account, err := repo.VerifyLogin(ctx, args[1], args[2])
			if err != nil {
				fmt.Println("error:", err)
			} else if account == nil {
				fmt.Println("Invalid username or password")
			} else if account.FirstLogin {
				fmt.Println("Logged in. First login: please change the default password.")
			} else {
				fmt.Println("Logged in as", account.Username)
			}
		case "passwd":
			if len(args) < 3 {
				fmt.Println("Usage: passwd <user> <password>")
				continue
			}
			ok, err := repo.ChangePassword(ctx, args[1], args[2])
			report(ok, err, "Password changed", "User not found")
		case "resetpw":
			ok, err := repo.ResetAdminPassword(ctx)
			report(ok, err, "Admin password reset", "Admin account not found")
		case "rename":
			if len(args) < 2 {
				fmt.Println("Usage: rename <user>")
				continue
			}
			if err := repo.RenameActiveUser(ctx, args[1]); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Renamed to", args[1])
			}
		case "profile":
			profile, err := repo.GetProfile(ctx)
			printJSON(profile, err)
		case "set":
			if len(args) < 3 {
				fmt.Println("Usage: set <field> <value...>")
				continue
			}
			if err := setProfileField(ctx, repo, args[1], strings.Join(args[2:], " ")); err != nil {
				fmt.Println("error:", err)
			}
		case "settings":
			settings, err := repo.GetSettings(ctx)
			printJSON(settings, err)
		case "toggle":
			mode, err := repo.ToggleProviderMode(ctx)
			if err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Provider mode:", mode)
			}
		case "services":
			filter := models.AnyService
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					fmt.Println("Usage: services [1-4]")
					continue
				}
				filter = models.ParseServiceType(n)
			}
			services, err := repo.ListCatalogServices(ctx, filter)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, s := range services {
				fmt.Printf("%-35s %.1f  %s  %s\n", s.Name, s.Rating, s.Type, s.Phone)
			}
		case "mine":
			services, err := repo.ListProviderServices(ctx)
			printJSON(services, err)
		case "add":
			addService(ctx, repo, strings.TrimSpace(strings.TrimPrefix(line, "add")))
		case "edit":
			if len(args) < 2 {
				fmt.Println("Usage: edit <id> <name> | <description> [| <type> [| <price> [| <time>]]]")
				continue
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Usage: edit <id> <name> | <description> [| <type> [| <price> [| <time>]]]")
				continue
			}
			rest := strings.TrimSpace(strings.TrimPrefix(line, "edit"))
			rest = strings.TrimSpace(strings.TrimPrefix(rest, args[1]))
			editService(ctx, repo, id, rest)
		case "rm":
			if len(args) < 2 {
				fmt.Println("Usage: rm <id>")
				continue
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Usage: rm <id>")
				continue
			}
			if err := repo.DeleteProviderService(ctx, id); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Deleted")
			}
		case "wipe":
			if err := repo.DeleteAccountData(ctx); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Profile and settings reset")
			}
		case "dump":
			dump, err := repo.DumpAll(ctx)
			printJSON(dump, err)
		case "reset":
			if err := repo.ResetAll(ctx); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Store reseeded")
			}
		case "exit", "quit":
			return
		default:
			fmt.Println("Unknown command; try help")
		}
	}
}

// setProfileField maps a field name to a one-field profile patch.
func setProfileField(ctx context.Context, repo *repository.Repository, field, value string) error {
	patch := repository.ProfilePatch{}
	switch field {
	case "name":
		patch.Name = &value
	case "email":
		patch.Email = &value
	case "phone":
		patch.Phone = &value
	case "address":
		patch.Address = &value
	case "city":
		patch.City = &value
	case "postal":
		patch.PostalCode = &value
	case "birth":
		patch.BirthDate = &value
	case "bio":
		patch.Bio = &value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return repo.SaveProfile(ctx, patch)
}

// addService parses "name | description [| type [| price [| time]]]".
func addService(ctx context.Context, repo *repository.Repository, raw string) {
	parts := strings.Split(raw, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		fmt.Println("Usage: add <name> | <description> [| <type> [| <price> [| <time>]]]")
		return
	}
	input := repository.ProviderServiceInput{Name: parts[0], Description: parts[1]}
	if len(parts) > 2 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			fmt.Println("service type must be a number 1-4")
			return
		}
		input.Type = models.ParseServiceType(n)
	}
	if len(parts) > 3 {
		input.Price = parts[3]
	}
	if len(parts) > 4 {
		input.EstimatedTime = parts[4]
	}
	created, err := repo.CreateProviderService(ctx, input)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Created service", created.ID)
}

// parseServicePatch parses "name | description [| type [| price [| time]]]"
// into a patch. Empty segments become nil fields so the stored values are
// kept.
func parseServicePatch(raw string) (repository.ProviderServicePatch, error) {
	patch := repository.ProviderServicePatch{}
	if strings.TrimSpace(raw) == "" {
		return patch, fmt.Errorf("nothing to change")
	}
	parts := strings.Split(raw, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] != "" {
		patch.Name = &parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		patch.Description = &parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return patch, fmt.Errorf("service type must be a number 1-4")
		}
		t := models.ParseServiceType(n)
		patch.Type = &t
	}
	if len(parts) > 3 && parts[3] != "" {
		patch.Price = &parts[3]
	}
	if len(parts) > 4 && parts[4] != "" {
		patch.EstimatedTime = &parts[4]
	}
	return patch, nil
}

// editService applies a partial update to an existing provider service.
func editService(ctx context.Context, repo *repository.Repository, id int, raw string) {
	patch, err := parseServicePatch(raw)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := repo.UpdateProviderService(ctx, id, patch); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Updated service", id)
}

func report(ok bool, err error, okMsg, missingMsg string) {
	switch {
	case err != nil:
		fmt.Println("error:", err)
	case ok:
		fmt.Println(okMsg)
	default:
		fmt.Println(missingMsg)
	}
}

func printJSON(v any, err error) {
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func main() {
	dataDir := flag.String("d", "data", "data directory")
	logLevel := flag.String("log", "error", "log level")
	flag.Parse()

	fmt.Printf("ServiçoFácil CLI %s (%s)\n", cmp.Or(version, "dev"), cmp.Or(buildDate, "unknown build date"))

	zapLogger, err := logger.New(*logLevel)
	if err != nil {
		fmt.Println("cannot init logger:", err)
		return
	}
	defer func() { _ = zapLogger.Sync() }()

	fileStore, err := store.OpenFileStore(*dataDir)
	if err != nil {
		fmt.Println("cannot open store:", err)
		return
	}
	defer func() { _ = fileStore.Close() }()

	repo := repository.New(fileStore, zapLogger)
	if err := repo.Initialize(context.Background()); err != nil {
		fmt.Println("cannot initialize store:", err)
		return
	}

	fmt.Println(`Type "help" for the command list.`)
	repl(repo)
}
