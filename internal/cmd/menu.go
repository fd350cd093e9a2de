package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/be-smiley2/glados-launcher/internal/catalog"
	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/fsops"
	"github.com/be-smiley2/glados-launcher/internal/launcher"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/scanner"
	"github.com/be-smiley2/glados-launcher/internal/ui"
	"github.com/be-smiley2/glados-launcher/internal/updater"
)

// runMenu drives the interactive facility loop: silent update check, first-run
// onboarding, then the main menu until the user quits.
func runMenu(ctx context.Context, cfg *config.Config, log *zerolog.Logger, version string) error {
	fs := afero.NewOsFs()
	if err := fsops.EnsureDir(fs, cfg.Paths.DataDir, 0755); err != nil {
		return err
	}

	reg := registry.New(cfg, log)
	cat := catalog.New(fs, cfg, log)
	launch := launcher.New(log)
	upd := updater.New(cfg, log, version)

	ui.PrintSeparator()
	fmt.Printf("GLaDOS Game Launcher v%s\n", upd.CurrentVersion())
	ui.PrintSeparator()

	firstRun := !fsops.Exists(fs, cfg.Paths.FirstRunFile)

	// Silent on repeat launches; a first run forces a visible check
	if release, outcome := upd.Check(ctx, firstRun); outcome == updater.OutcomeUpdateAvailable {
		ui.GLaDOS("Version %s is available. The update option awaits your inevitable hesitation.", release.Version())
	}

	cat.Generate(reg.Document(), upd.CurrentVersion())

	if firstRun {
		handleFirstRun(fs, cfg, log, reg, cat, upd.CurrentVersion())
	}

	for {
		choice, err := mainMenuChoice(reg)
		if err != nil {
			// promptui returns an error on interrupt; treat it as quit
			break
		}

		switch choice {
		case menuPlay:
			menuPlayGame(ctx, reg, cat, launch, upd.CurrentVersion())
		case menuManage:
			menuManageGames(cfg, log, reg, cat, upd.CurrentVersion())
		case menuCatalog:
			if content, err := cat.View(); err == nil {
				fmt.Println(content)
			} else {
				ui.GLaDOS("No catalog found.")
			}
		case menuUpdate:
			runUpdate(ctx, upd, true)
		case menuInfo:
			printSystemInfo(reg, upd.CurrentVersion(), cfg)
		case menuQuit:
			ui.GLaDOS("Goodbye. Your games will miss your incompetence.")
			return nil
		}
	}
	return nil
}

const (
	menuPlay    = "Play game"
	menuManage  = "Game management"
	menuCatalog = "View catalog"
	menuUpdate  = "Check for updates"
	menuInfo    = "System info"
	menuQuit    = "Quit"
)

func mainMenuChoice(reg *registry.Registry) (string, error) {
	if reg.Count() == 0 {
		ui.GLaDOS("No games found.")
		ui.Wheatley("But don't worry! I can find your games for you! Check Game management!")
		_, choice, err := ui.SelectPrompt("MAIN MENU", []string{menuManage, menuUpdate, menuInfo, menuQuit})
		return choice, err
	}
	ui.GLaDOS("%d games available.", reg.Count())
	_, choice, err := ui.SelectPrompt("MAIN MENU", []string{menuPlay, menuManage, menuCatalog, menuUpdate, menuInfo, menuQuit})
	return choice, err
}

func menuPlayGame(ctx context.Context, reg *registry.Registry, cat *catalog.Generator, launch *launcher.Launcher, version string) {
	games := reg.List()
	if len(games) == 0 {
		ui.GLaDOS("Nothing to play. How predictable.")
		return
	}

	items := make([]string, len(games))
	for i, game := range games {
		label := fmt.Sprintf("%d. %s [%s]", game.ID, game.Name, game.Platform)
		if game.PlayCount > 0 {
			label += fmt.Sprintf(" (%dx)", game.PlayCount)
		}
		items[i] = label
	}

	index, _, err := ui.SelectPrompt("Select a test subject... game", items)
	if err != nil {
		return
	}
	game := games[index]

	ui.GLaDOS("*Initializing launch for '%s'...*", game.Name)
	if err := launch.Open(ctx, game.LaunchURL); err != nil {
		ui.GLaDOS("Launch failed. Your technical incompetence strikes again.")
		return
	}

	reg.RecordLaunch(game.ID)
	cat.Generate(reg.Document(), version)
	ui.GLaDOS("'%s' launched. Try not to disappoint me.", game.Name)
}

func menuManageGames(cfg *config.Config, log *zerolog.Logger, reg *registry.Registry, cat *catalog.Generator, version string) {
	for {
		_, choice, err := ui.SelectPrompt("GAME MANAGEMENT", []string{
			"Add game", "Remove game", "View all games", "Scan for installed games", "Update catalog", "Back",
		})
		if err != nil {
			return
		}

		switch choice {
		case "Add game":
			if addGameInteractive(reg) {
				cat.Generate(reg.Document(), version)
			}
		case "Remove game":
			removeGameInteractive(reg)
			cat.Generate(reg.Document(), version)
		case "View all games":
			printGames(reg.List())
		case "Scan for installed games":
			scanInteractive(log, reg)
			cat.Generate(reg.Document(), version)
		case "Update catalog":
			cat.Generate(reg.Document(), version)
			ui.System("Catalog updated.")
		case "Back":
			return
		}
	}
}

func addGameInteractive(reg *registry.Registry) bool {
	name, err := ui.InputPrompt("Game name", "", ui.ValidateNonEmpty)
	if err != nil {
		return false
	}

	platformNames := make([]string, len(core.Platforms))
	for i, p := range core.Platforms {
		platformNames[i] = string(p)
	}
	index, _, err := ui.SelectPrompt("Platform", platformNames)
	if err != nil {
		return false
	}
	platform := core.Platforms[index]

	var idLabel string
	validate := ui.ValidateNonEmpty
	switch platform {
	case core.PlatformSteam:
		idLabel = "Steam App ID"
		validate = ui.ValidateDigits
	case core.PlatformUbisoft:
		idLabel = "Ubisoft Game ID"
		validate = ui.ValidateDigits
	case core.PlatformEpic:
		idLabel = "Epic catalog ID"
	case core.PlatformGOG:
		idLabel = "GOG game slug"
	default:
		idLabel = "Launch URL/Command"
	}

	storeID, err := ui.InputPrompt(idLabel, "", validate)
	if err != nil {
		return false
	}

	storeURL := core.StoreURL(platform, storeID, name)
	if platform == core.PlatformOther {
		storeURL, _ = ui.InputPrompt("Store URL (optional)", "", nil)
	}

	id, err := reg.Create(name, platform, storeID, storeURL)
	if err != nil {
		ui.PrintError("%v", err)
		return false
	}
	ui.Wheatley("Added '%s' as game #%d!", name, id)
	return true
}

func removeGameInteractive(reg *registry.Registry) {
	games := reg.List()
	if len(games) == 0 {
		ui.GLaDOS("No games to remove.")
		return
	}

	items := make([]string, len(games))
	for i, game := range games {
		items[i] = fmt.Sprintf("%d. %s", game.ID, game.Name)
	}
	index, _, err := ui.SelectPrompt("Remove which game", items)
	if err != nil {
		return
	}
	game := games[index]

	ok, err := ui.ConfirmPrompt(fmt.Sprintf("Remove '%s'", game.Name))
	if err != nil || !ok {
		return
	}

	if err := reg.Remove(game.ID); err != nil {
		ui.PrintError("%v", err)
		return
	}
	ui.System("Removed '%s'", game.Name)
}

func scanInteractive(log *zerolog.Logger, reg *registry.Registry) {
	ui.Wheatley("Right! Comprehensive game scan initiated!")
	found := scanner.NewSteamScanner(afero.NewOsFs(), log).Scan()
	if len(found) == 0 {
		ui.Wheatley("Hmm, no games found. That's... odd. Maybe they're hiding?")
		return
	}

	ui.Wheatley("Fantastic! Found %d games! I'm quite proud of that!", len(found))
	added := 0
	for _, game := range found {
		if hasStoreID(reg, game.Platform, game.StoreID) {
			continue
		}
		storeURL := core.StoreURL(game.Platform, game.StoreID, game.Name)
		if _, err := reg.CreateDetected(game.Name, game.Platform, game.StoreID, storeURL); err != nil {
			log.Warn().Err(err).Str("name", game.Name).Msg("detected game not added")
			continue
		}
		added++
	}
	ui.System("Added %d newly detected games.", added)
}

func handleFirstRun(fs afero.Fs, cfg *config.Config, log *zerolog.Logger, reg *registry.Registry, cat *catalog.Generator, version string) {
	ui.GLaDOS("First time setup detected.")
	ui.GLaDOS("Your collection is empty. How predictable.")
	ui.Wheatley("Hello there! I'm Wheatley, your gaming assistant!")

	if ok, _ := ui.ConfirmPrompt("Shall I find all your games? It'll be brilliant!"); ok {
		scanInteractive(log, reg)
	}

	if reg.Count() == 0 {
		if ok, _ := ui.ConfirmPrompt("Would you like to add some games manually instead"); ok {
			for addGameInteractive(reg) {
				if ok, _ := ui.ConfirmPrompt("Add another"); !ok {
					break
				}
			}
		}
	} else {
		ui.Wheatley("Setup complete! Your games are ready to play!")
	}

	cat.Generate(reg.Document(), version)
	if err := afero.WriteFile(fs, cfg.Paths.FirstRunFile, []byte("First run completed - GLaDOS v"+version+"\n"), 0644); err != nil {
		log.Warn().Err(err).Msg("first-run marker not written")
	}
}

func printGames(games []*core.GameEntry) {
	if len(games) == 0 {
		ui.GLaDOS("No games found.")
		return
	}
	fmt.Printf("\nGame Collection (%d games):\n", len(games))
	for _, game := range games {
		marker := ""
		if game.Detected {
			marker = " [AUTO-DETECTED]"
		}
		fmt.Printf("\n%d. %s%s\n", game.ID, game.Name, marker)
		fmt.Printf("   Platform: %s\n", ui.ColorizePlatform(game.Platform))
		if game.PlayCount > 0 {
			fmt.Printf("   Played: %d times\n", game.PlayCount)
		}
		if !game.AddedAt.IsZero() {
			fmt.Printf("   Added: %s\n", game.AddedAt.Format("2006-01-02 15:04"))
		}
	}
}

func printSystemInfo(reg *registry.Registry, version string, cfg *config.Config) {
	ui.PrintHeader("SYSTEM INFORMATION")
	ui.PrintKeyValue("Version", version)
	ui.PrintKeyValue("Total games", strconv.Itoa(reg.Count()))
	if reg.Count() > 0 {
		ui.PrintKeyValue("Game range", fmt.Sprintf("1-%d", reg.MaxID()))
		total := 0
		for _, game := range reg.List() {
			total += game.PlayCount
		}
		ui.PrintKeyValue("Total launches", strconv.Itoa(total))
	}
	ui.PrintKeyValue("Repository", fmt.Sprintf("https://github.com/%s/%s", cfg.Repo.Owner, cfg.Repo.Name))
	ui.PrintKeyValue("Data dir", cfg.Paths.DataDir)
}
