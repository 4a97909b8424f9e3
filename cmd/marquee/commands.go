package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/narwhalmedia/marquee/internal/movies"
	"github.com/narwhalmedia/marquee/pkg/models"
)

var errUsage = errors.New("invalid arguments")

func runGenres(ctx context.Context, a *app, out *printer) error {
	st := a.store.Movies.FetchGenres(ctx)
	if out.json {
		return out.JSON(st.Genres)
	}
	if len(st.Genres) == 0 {
		out.Line("No genres available.")
		return nil
	}
	for _, g := range st.Genres {
		out.Line(g.Name)
	}
	return nil
}

func runBrowse(ctx context.Context, a *app, out *printer, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	genre := fs.String("genre", "", "Genre to browse (empty for all)")
	page := fs.Int("page", 1, "Page number")
	query := fs.String("q", "", "Filter titles on the page")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	a.store.Movies.SetGenre(*genre)
	a.store.Movies.SetSearchQuery(*query)
	st := a.store.Movies.FetchByGenre(ctx, *genre, *page)
	if st.Error != "" {
		return errors.New(st.Error)
	}

	visible := st.Visible()
	if out.json {
		return out.JSON(map[string]interface{}{
			"movies":      visible,
			"currentPage": st.CurrentPage,
			"totalPages":  st.TotalPages,
		})
	}

	label := st.CurrentGenre
	if label == "" {
		label = "All genres"
	}
	out.Line("%s (page %d of %d)", label, st.CurrentPage, st.TotalPages)
	for _, m := range visible {
		out.Line("  %-12s %s (%d)", m.Key, m.Title, m.ReleaseYear)
	}
	return nil
}

func runMovie(ctx context.Context, a *app, out *printer, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	root := a.store.OpenMovie(ctx, args[0])
	defer a.store.CloseMovie()

	if out.json {
		return out.JSON(root)
	}

	detail := root.Movies
	switch detail.DetailStatus {
	case movies.DetailFailed:
		return errors.New(detail.Error)
	case movies.DetailMissing:
		out.Line("Movie Not Found")
		out.Line("No details found for this movie.")
		return nil
	}

	m := detail.MovieDetail
	if m == nil {
		return errors.New("movie detail unavailable")
	}
	out.Line("%s (%d)", m.Title, m.ReleaseYear)
	if len(m.Genres) > 0 {
		out.Line("%s", strings.Join(m.Genres, ", "))
	}
	if m.Rating > 0 {
		out.Line("Rating: %.1f", m.Rating)
	}
	if m.Overview != "" {
		out.Line("")
		out.Line("%s", m.Overview)
	}

	out.Line("")
	rv := root.Reviews
	switch {
	case rv.Error != "":
		out.Line("Reviews: %s", rv.Error)
	case len(rv.Reviews) == 0:
		out.Line("No reviews yet.")
	default:
		out.Line("Reviews:")
		for _, r := range rv.Reviews {
			out.Line("  %s %s  %s", stars(r.Rating), r.Name, r.CreatedAt.Format("2006-01-02"))
			out.Line("    %s", r.Comment)
		}
	}
	return nil
}

func runReview(ctx context.Context, a *app, out *printer, args []string) error {
	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	name := fs.String("name", "", "Reviewer name")
	rating := fs.Int("rating", 0, "Rating from 1 to 5")
	comment := fs.String("comment", "", "Review text")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return errUsage
	}

	input := models.ReviewInput{Name: *name, Rating: *rating, Comment: *comment}
	if problems := input.Validate(); len(problems) > 0 {
		for _, field := range []string{"name", "rating", "comment"} {
			if msg, ok := problems[field]; ok {
				out.Line("%s", msg)
			}
		}
		return errUsage
	}

	result := a.store.Reviews.AddReview(ctx, fs.Arg(0), input)
	created, err := result.Unwrap()
	if err != nil {
		return errors.New(a.store.Reviews.Snapshot().Error)
	}

	if out.json {
		return out.JSON(created)
	}
	out.Line("Review %s added.", created.ID)
	return nil
}

func runTheme(ctx context.Context, a *app, out *printer, args []string) error {
	action := "show"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "show":
	case "toggle":
		a.store.Theme.Toggle(ctx)
	default:
		if err := a.store.Theme.SetTheme(ctx, action); err != nil {
			return err
		}
	}

	st := a.store.Theme.Snapshot()
	if out.json {
		return out.JSON(st)
	}
	out.Line("%s", st.Theme)
	return nil
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > models.MaxRating {
		n = models.MaxRating
	}
	return fmt.Sprintf("%s%s", strings.Repeat("★", n), strings.Repeat("☆", models.MaxRating-n))
}
