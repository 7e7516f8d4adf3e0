// Command portal is a terminal client for the student portal API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"student_portal/internal/app/di"
	"student_portal/internal/client/api"
	"student_portal/internal/client/session"
	"student_portal/internal/client/view"
	"student_portal/internal/platform/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type portalKey struct{}

func newApp() *cli.App {
	return &cli.App{
		Name:  "portal",
		Usage: "university student portal client",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Usage: "API base URL", EnvVars: []string{"PORTAL_API_URL"}},
			&cli.StringFlag{Name: "session", Usage: "session file path", EnvVars: []string{"PORTAL_SESSION_FILE"}},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "log level"},
		},
		Before: setup,
		Commands: []*cli.Command{
			loginCommand(),
			{
				Name:  "logout",
				Usage: "end the current session",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "all", Usage: "also end every other session of this account"},
				},
				Action: func(c *cli.Context) error {
					p := portalFrom(c)
					if c.Bool("all") && p.Session.IsAuthenticated() {
						n, err := p.API.LogoutAll(c.Context)
						if err != nil && !api.IsUnauthorized(err) {
							return err
						}
						fmt.Fprintf(c.App.Writer, "Revoked %d session(s).\n", n)
					}
					p.Session.Logout(c.Context)
					fmt.Fprintln(c.App.Writer, "Logged out.")
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "show the signed-in user",
				Action: func(c *cli.Context) error {
					p := portalFrom(c)
					if !p.Session.IsAuthenticated() {
						fmt.Fprintln(c.App.Writer, "Not logged in.")
						return nil
					}
					if err := p.Session.Refresh(c.Context, p.API.Me); err != nil {
						return err
					}
					u := p.Session.User()
					fmt.Fprintf(c.App.Writer, "%s (%s)\n", u.DisplayName(), u.Kind())
					return nil
				},
			},
			{
				Name:  "home",
				Usage: "show general announcements",
				Action: func(c *cli.Context) error {
					return navigate(c, view.PathHome, view.NavigateOptions{})
				},
			},
			{
				Name:      "department",
				Usage:     "show a department's announcements",
				ArgsUsage: "SLUG",
				Action: func(c *cli.Context) error {
					slug := c.Args().First()
					if slug == "" {
						return errors.New("department slug is required")
					}
					return navigate(c, view.DepartmentPath(slug), view.NavigateOptions{})
				},
			},
			{
				Name:  "dashboard",
				Usage: "show the dashboard of the signed-in user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tab", Usage: "admin tab: announcements, projects or students"},
					&cli.StringFlag{Name: "search", Usage: "filter students by name, email or student number"},
				},
				Action: func(c *cli.Context) error {
					tab, err := view.ParseTab(c.String("tab"))
					if err != nil {
						return err
					}
					p := portalFrom(c)
					path := view.DashboardPath(p.Session.UserKind())
					return navigate(c, path, view.NavigateOptions{Tab: tab, Search: c.String("search")})
				},
			},
			wishlistCommand(),
			adminCommand(),
		},
	}
}

func setup(c *cli.Context) error {
	logger.Configure(logger.Config{Level: c.String("log-level"), Pretty: true, Output: c.App.ErrWriter})

	cfg := api.LoadConfig()
	if v := c.String("api"); v != "" {
		cfg.BaseURL = v
	}
	path := c.String("session")
	if path == "" {
		var err error
		if path, err = session.DefaultPath(); err != nil {
			return fmt.Errorf("resolve session path: %w", err)
		}
	}
	c.Context = context.WithValue(c.Context, portalKey{}, di.NewPortal(cfg, session.NewFileStorage(path)))
	return nil
}

func portalFrom(c *cli.Context) *di.Portal {
	return c.Context.Value(portalKey{}).(*di.Portal)
}

func navigate(c *cli.Context, path string, opts view.NavigateOptions) error {
	p := portalFrom(c)
	app := view.NewApp(p.Session, p.API, view.NewRenderer(c.App.Writer, nil))
	_, err := app.Navigate(c.Context, path, opts)
	if api.IsUnauthorized(err) {
		p.Session.Logout(c.Context)
		return errors.New("session expired, please log in again")
	}
	return err
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in as a student or an admin",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Value: string(api.KindStudent), Usage: "student or admin"},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", EnvVars: []string{"PORTAL_PASSWORD"}, Usage: "read from stdin when unset"},
		},
		Action: func(c *cli.Context) error {
			kind := api.Kind(c.String("type"))
			if kind != api.KindStudent && kind != api.KindAdmin {
				return fmt.Errorf("unknown user type %q", kind)
			}
			password := c.String("password")
			if password == "" {
				var err error
				if password, err = readPassword(c.App.Reader, c.App.Writer); err != nil {
					return err
				}
			}
			p := portalFrom(c)
			if !p.Session.Login(c.Context, c.String("email"), password, kind) {
				return errors.New("invalid credentials or server unavailable")
			}
			fmt.Fprintf(c.App.Writer, "Logged in as %s.\n", p.Session.User().DisplayName())
			return navigate(c, view.DashboardPath(kind), view.NavigateOptions{})
		},
	}
}

func readPassword(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Password: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func projectArg(c *cli.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("project id must be a positive integer")
	}
	return uint(id), nil
}

// studentDashboard loads the dashboard of the signed-in student.
func studentDashboard(c *cli.Context) (*view.StudentDashboard, error) {
	p := portalFrom(c)
	if view.Guard(p.Session, view.PageStudentDashboard) != "" {
		return nil, errors.New("log in as a student first")
	}
	student := api.MatchUser(p.Session.User(),
		func(s api.Student) api.Student { return s },
		func(api.Admin) api.Student { return api.Student{} },
	)
	d := view.NewStudentDashboard(p.API, student)
	if err := d.Load(c.Context); err != nil {
		return nil, err
	}
	return d, nil
}

func wishlistCommand() *cli.Command {
	change := func(apply func(*view.StudentDashboard, context.Context, uint) error, done string) cli.ActionFunc {
		return func(c *cli.Context) error {
			id, err := projectArg(c)
			if err != nil {
				return err
			}
			d, err := studentDashboard(c)
			if err != nil {
				return err
			}
			if err := apply(d, c.Context, id); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, done)
			d.Render(view.NewRenderer(c.App.Writer, nil))
			return nil
		}
	}
	return &cli.Command{
		Name:  "wishlist",
		Usage: "manage your project wishlist",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				ArgsUsage: "PROJECT_ID",
				Action:    change((*view.StudentDashboard).Add, "Project added to wishlist."),
			},
			{
				Name:      "remove",
				ArgsUsage: "PROJECT_ID",
				Action:    change((*view.StudentDashboard).Remove, "Project removed from wishlist."),
			},
		},
	}
}

func requireAdmin(c *cli.Context) (*di.Portal, error) {
	p := portalFrom(c)
	if view.Guard(p.Session, view.PageAdminDashboard) != "" {
		return nil, errors.New("log in as an admin first")
	}
	return p, nil
}

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "admin operations",
		Subcommands: []*cli.Command{
			{
				Name:  "announce",
				Usage: "post an announcement",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "content", Required: true},
					&cli.StringFlag{Name: "display", Value: "general", Usage: "department of the announcement"},
					&cli.StringFlag{Name: "datetime", Usage: "RFC 3339 time; defaults to now"},
				},
				Action: func(c *cli.Context) error {
					p, err := requireAdmin(c)
					if err != nil {
						return err
					}
					a, err := p.API.CreateAnnouncement(c.Context, api.NewAnnouncement{
						Title:    c.String("title"),
						Content:  c.String("content"),
						Display:  c.String("display"),
						Datetime: c.String("datetime"),
					})
					if err != nil {
						return err
					}
					view.NewRenderer(c.App.Writer, nil).AnnouncementCard(*a)
					return nil
				},
			},
			{
				Name:  "add-project",
				Usage: "create a project",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "description", Required: true},
				},
				Action: func(c *cli.Context) error {
					p, err := requireAdmin(c)
					if err != nil {
						return err
					}
					proj, err := p.API.CreateProject(c.Context, c.String("title"), c.String("description"))
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created project %d: %s\n", proj.ID, proj.Title)
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "download every student's wishlist as an .xlsx workbook",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Value: "student-wishlists.xlsx"},
				},
				Action: func(c *cli.Context) error {
					p, err := requireAdmin(c)
					if err != nil {
						return err
					}
					f, err := os.Create(c.String("out"))
					if err != nil {
						return err
					}
					if err := p.API.ExportWishlists(c.Context, f); err != nil {
						_ = f.Close()
						return err
					}
					if err := f.Close(); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Wrote %s\n", c.String("out"))
					return nil
				},
			},
		},
	}
}
