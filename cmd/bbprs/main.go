// bbprs lists Bitbucket Server pull requests from the terminal. Hosts
// are configured once with `bbprs login`; tokens go to the system
// keyring and everything else to ~/.config/bbprs/config.yaml.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/bbprs/bitbucket"
	"github.com/nhle/bbprs/config"
	"github.com/nhle/bbprs/credential"
	"github.com/nhle/bbprs/internal/theme"
	"github.com/nhle/bbprs/internal/ui/prlist"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin()
	case "logout":
		err = runLogout(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		if bitbucket.IsAuthError(err) {
			log.Fatalf("%v\nrun `bbprs login` to refresh your token", err)
		}
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(`
usage: bbprs <command> [flags]

commands:
  login   configure a Bitbucket host and store its token
  logout  remove a configured host and its token
  list    list pull requests (dashboard, or one repo with -repo)
`))
}

// runLogin prompts for host details, stores the token in the keyring,
// and appends the host to the config file.
func runLogin() error {
	var name, baseURL, username, token string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Host name").
				Description("A short label, e.g. work").
				Value(&name),
			huh.NewInput().
				Title("Base URL").
				Description("e.g. https://bitbucket.corp.example.com").
				Value(&baseURL),
			huh.NewInput().
				Title("Username").
				Value(&username),
			huh.NewInput().
				Title("HTTP access token").
				EchoMode(huh.EchoModePassword).
				Value(&token),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running login form: %w", err)
	}

	path := config.DefaultPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	host := cfg.AddHost(name, strings.TrimRight(baseURL, "/"), username)
	if err := credential.Set(credential.TokenKey(host.ID), token); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	log.Printf("host %q saved; token stored in the system keyring", name)
	return nil
}

// runLogout removes a configured host and deletes its token from the
// system keyring.
func runLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	hostName := fs.String("host", "", "configured host name (default: the only host)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := config.DefaultPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if len(cfg.Hosts) == 0 {
		return fmt.Errorf("no hosts configured")
	}

	host, err := cfg.FindHost(*hostName)
	if err != nil {
		return err
	}

	// A missing keyring entry should not block removing the host.
	if err := credential.Delete(credential.TokenKey(host.ID)); err != nil {
		log.Printf("warning: %v", err)
	}

	cfg.RemoveHost(host.ID)
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	log.Printf("host %q removed", host.Name)
	return nil
}

// runList fetches pull requests for a configured host and renders them
// interactively or as plain styled lines.
func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	hostName := fs.String("host", "", "configured host name (default: the only host)")
	repoArg := fs.String("repo", "", "PROJECT/slug; fetch one repository instead of the dashboard")
	stateArg := fs.String("state", "", "ALL, OPEN, DECLINED, or MERGED (default: host setting)")
	fetchAll := fs.Bool("all", false, "fetch every page regardless of date window")
	weeks := fs.Int("weeks", 4, "how many weeks back to fetch")
	plain := fs.Bool("plain", false, "print lines instead of the interactive list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	if len(cfg.Hosts) == 0 {
		return fmt.Errorf("no hosts configured; run `bbprs login` first")
	}

	host, err := cfg.FindHost(*hostName)
	if err != nil {
		return err
	}

	token, err := credential.Get(credential.TokenKey(host.ID))
	if err != nil {
		return fmt.Errorf("loading token for host %q: %w", host.Name, err)
	}

	auth := bitbucket.Authenticate(bitbucket.User{
		Username: host.Username,
		Token:    token,
	})
	client := bitbucket.NewClient(host.BaseURL, auth)

	state := host.State
	if *stateArg != "" {
		state = *stateArg
	}
	opts := bitbucket.Options{
		State:     bitbucket.StateFilter(state),
		StartDate: time.Now().Add(-time.Duration(*weeks) * 7 * 24 * time.Hour),
		FetchAll:  *fetchAll,
		PageSize:  host.PageSize,
	}

	fetch, title, err := buildFetch(client, *repoArg, opts)
	if err != nil {
		return err
	}

	if *plain {
		prs, err := fetch(context.Background())
		if err != nil {
			return err
		}
		printPlain(prs, host.Username)
		return nil
	}

	model := prlist.New(title, host.Username, fetch)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}

// buildFetch picks the dashboard or repository fetch based on -repo.
func buildFetch(
	client *bitbucket.Client,
	repoArg string,
	opts bitbucket.Options,
) (prlist.FetchFunc, string, error) {
	if repoArg == "" {
		fetch := func(ctx context.Context) ([]bitbucket.PullRequest, error) {
			return client.FetchUserPullRequests(ctx, opts)
		}
		return fetch, "Your pull requests", nil
	}

	parts := strings.SplitN(repoArg, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, "", fmt.Errorf(
			"invalid -repo %q: expected PROJECT/slug", repoArg,
		)
	}
	repo := bitbucket.Repository{ProjectKey: parts[0], Slug: parts[1]}

	fetch := func(ctx context.Context) ([]bitbucket.PullRequest, error) {
		return client.FetchRepoPullRequests(ctx, repo, opts)
	}
	return fetch, repoArg, nil
}

// printPlain writes one styled line per pull request to stdout.
func printPlain(prs []bitbucket.PullRequest, viewer string) {
	for _, pr := range prs {
		role := ""
		if r := pr.RoleOf(viewer); r != bitbucket.ParticipationNotOnPR {
			role = " [" + string(r) + "]"
		}
		fmt.Printf(
			"%s %s/%s %s%s  %s\n",
			theme.StateStyle(pr.State).Render(string(pr.State)),
			pr.Repository.ProjectKey, pr.Repository.Slug,
			pr.Title, role,
			pr.UpdatedDate.Format("2006-01-02 15:04"),
		)
	}
}
