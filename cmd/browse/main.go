package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/VSayann/PokeScope-v2/internal/browse"
)

func main() {
	base := flag.String("base", "http://localhost:8080", "server base URL")
	identifier := flag.String("user", "", "login identifier (email or username)")
	password := flag.String("pass", "", "login password")
	query := flag.String("search", "", "name filter")
	types := flag.String("types", "", "comma-separated type filter")
	gen := flag.String("gen", "all", "generation filter")
	minHP := flag.Int("min-hp", 1, "minimum HP")
	favsOnly := flag.Bool("favorites", false, "show favorites only")
	page := flag.Int("page", 1, "page number")
	flag.Parse()

	client, err := browse.NewClient(*base)
	if err != nil {
		log.Fatalf("client: %v", err)
	}

	app := browse.NewApp(client)

	if *identifier != "" {
		user, err := client.Login(*identifier, *password)
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		fmt.Printf("logged in as %s\n", user.Username)
		if err := app.RefreshFavorites(); err != nil {
			log.Fatalf("favorites: %v", err)
		}
	}

	if *favsOnly {
		if *identifier == "" {
			log.Fatal("-favorites requires -user/-pass")
		}
		app.SetFavoritesOnly(true)
	} else if err := app.Load(); err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	app.SetSearchNow(*query)
	for _, t := range strings.Split(*types, ",") {
		if t = strings.TrimSpace(t); t != "" {
			app.ToggleType(t)
		}
	}
	app.SetGeneration(*gen)
	app.SetMinHP(*minHP)
	app.SetPage(*page)

	for _, p := range app.Visible() {
		star := " "
		if app.IsFavorite(p.ID) {
			star = "*"
		}
		fmt.Printf("%s #%04d %-14s %-14s hp=%-3d types=%s\n",
			star, p.ID, p.DisplayName(), p.Name, p.Stat("hp"), strings.Join(p.TypeNames(), ","))
	}

	var controls []string
	for _, n := range app.PageNumbers() {
		if n == browse.Ellipsis {
			controls = append(controls, "...")
		} else if n == app.Page() {
			controls = append(controls, "["+strconv.Itoa(n)+"]")
		} else {
			controls = append(controls, strconv.Itoa(n))
		}
	}
	if len(controls) > 0 {
		fmt.Println("pages:", strings.Join(controls, " "))
	}
}
