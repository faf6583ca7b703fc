package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lozambet/brutedict/pkg/passgen"
	"github.com/lozambet/brutedict/pkg/profile"
	"github.com/lozambet/brutedict/pkg/wordlist"
)

var banner = strings.Join([]string{
	"_                _            _ _      _   ",
	"| |              | |          | (_)    | |  ",
	"| |__  _ __ _   _| |_ ___   __| |_  ___| |_ ",
	"| '_ \\| '__| | | | __/ _ \\ / _` | |/ __| __|",
	"| |_) | |  | |_| | ||  __/| (_| | | (__| |_ ",
	"|_.__/|_|   \\__,_|\\__\\___| \\__,_|_|\\___|\\__|",
}, "\n")

// countPrinter renders estimates and totals with thousands separators.
var countPrinter = message.NewPrinter(language.English)

func main() {
	profilePath := flag.String("profile", "", "YAML run profile (skips the interactive prompts)")
	outputPath := flag.String("output", "", "wordlist destination (overrides BRUTEDICT_OUTPUT)")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", markBang, err)
		os.Exit(1)
	}

	log := newLogger(cfg).With(slog.String("run_id", uuid.NewString()))
	p := &prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}

	optionColor.Fprintln(p.out, banner)
	fmt.Fprintln(p.out)

	var runCfg passgen.Config
	if *profilePath != "" {
		prof, err := profile.Load(*profilePath)
		if err != nil {
			p.warnf("Failed to load profile: %v", err)
			os.Exit(1)
		}
		runCfg = prof.Config()
		log.Info("profile loaded", slog.String("path", *profilePath))
	} else {
		runCfg = collectConfig(p)
	}

	out := cfg.OutputPath
	if *outputPath != "" {
		out = *outputPath
	}

	if err := run(p, log, runCfg, cfg.Threshold, out); err != nil {
		p.warnf("%v", err)
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// collectConfig walks the user through the interactive flow: mode first,
// then the fields that mode needs.
func collectConfig(p *prompter) passgen.Config {
	fmt.Fprintf(p.out, "%s %s\n", markPlus, titleColor.Sprint("Select mode:"))
	fmt.Fprintf(p.out, "  %s) %s\n", numberColor.Sprint("1"), optionColor.Sprint("Biographical infos"))
	fmt.Fprintf(p.out, "  %s) %s\n\n", numberColor.Sprint("2"), optionColor.Sprint("Keywords-based mix"))

	choice := strings.ToLower(p.ask("Choose mode (1/2)", "1"))
	if choice == "2" || choice == "mix" || choice == "m" {
		return collectKeywordConfig(p)
	}
	return collectBiographicalConfig(p)
}

func collectKeywordConfig(p *prompter) passgen.Config {
	cfg := passgen.Config{Mode: passgen.ModeKeywordMix}
	cfg.Keywords = p.askList("Keywords (comma-separated)")
	cfg.MaxWords = askInt(p, "Max words per password", 3)
	cfg.Symbols = p.askList("Symbols to insert between words (comma-separated, empty for none)")
	if len(cfg.Symbols) > 0 {
		cfg.Separator.MaxPerGap = askInt(p, "Max symbols per gap", 1)
		cfg.Separator.AllowRepeat = p.askYesNo("Allow repeated symbols in one gap?", true)
	}
	return cfg
}

func collectBiographicalConfig(p *prompter) passgen.Config {
	cfg := passgen.Config{Mode: passgen.ModeBiographical}
	cfg.FirstName = p.ask("First name", "")
	cfg.LastName = p.ask("Last name", "")
	cfg.Nicknames = p.askList("Nicknames (comma-separated)")
	cfg.SurnameVariants = p.askList("Surname variants (comma-separated)")
	cfg.Numbers = p.askList("Numbers to include (comma-separated)")
	cfg.Symbols = p.askList("Symbols to include (comma-separated)")
	if len(cfg.Symbols) > 0 {
		cfg.Separator.MaxPerGap = askInt(p, "Max symbols per gap", 1)
		cfg.Separator.AllowRepeat = p.askYesNo("Allow repeated symbols in one gap?", true)
	}

	switch strings.ToLower(p.ask("Capitalization? (none/tokens/firstchar)", "none")) {
	case "tokens", "token", "t":
		cfg.Caps = passgen.CapsTokens
		switch strings.ToLower(p.ask("Apply to? (names/surnames/both)", "both")) {
		case "surnames", "surname", "s":
			cfg.CapsScope = passgen.ScopeSurnames
		case "both", "b":
			cfg.CapsScope = passgen.ScopeBoth
		default:
			cfg.CapsScope = passgen.ScopeNames
		}
	case "firstchar", "first", "f":
		cfg.Caps = passgen.CapsFirstChar
	default:
		cfg.Caps = passgen.CapsNone
	}

	return cfg
}

func askInt(p *prompter, label string, def int) int {
	n, err := strconv.Atoi(p.ask(label, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return n
}

// run executes one generation run end to end: estimate, gate, generate,
// persist, summarize.
func run(p *prompter, log *slog.Logger, runCfg passgen.Config, threshold int, out string) error {
	declined := false
	gen := passgen.New(
		passgen.WithThreshold(threshold),
		passgen.WithConfirm(func(estimate int) bool {
			p.warnf("Estimated combinations: %s. This may take a long time and use a lot of RAM.",
				countPrinter.Sprintf("%d", estimate))
			ok := p.askYesNo("Continue anyway?", false)
			declined = !ok
			return ok
		}),
	)

	est, err := gen.Estimate(runCfg)
	if err != nil {
		return err
	}
	log.Info("estimate computed", slog.Int("estimate", est))
	if est <= threshold {
		p.infof("Estimated combinations: %s", countPrinter.Sprintf("%d", est))
	}

	results, err := gen.Generate(runCfg)
	if err != nil {
		return err
	}
	if declined {
		p.warnf("Operation cancelled by user.")
		log.Info("run declined", slog.Int("estimate", est))
		return nil
	}
	if results.Count() == 0 {
		p.warnf("No combinations found matching the length criteria.")
		return nil
	}
	log.Info("generation finished", slog.Int("candidates", results.Count()))

	fmt.Fprintln(p.out)
	bar := progressbar.NewOptions(results.Count(),
		progressbar.OptionSetDescription(markPlus+" Saving"),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	if err := wordlist.WriteFile(out, results.Candidates, func(current, _ int) {
		_ = bar.Set(current)
	}); err != nil {
		return err
	}
	_ = bar.Finish()
	p.notef("Save complete.")

	rule := color.New(color.FgGreen).Sprint("+" + strings.Repeat("=", 60))
	fmt.Fprintf(p.out, "\n%s\n", rule)
	fmt.Fprintf(p.out, "%s %s: %s\n", markStar, titleColor.Sprint("TOTAL COMBINATIONS"),
		numberColor.Sprint(countPrinter.Sprintf("%d", results.Count())))
	fmt.Fprintf(p.out, "%s Saved to: %s\n", markStar, labelColor.Sprint(out))
	fmt.Fprintf(p.out, "%s\n\n", rule)

	return nil
}
