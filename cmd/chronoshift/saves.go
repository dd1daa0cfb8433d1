package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chronoshift/internal/platform/tui"
	"github.com/vovakirdan/chronoshift/internal/storage"
)

var (
	flagSavesLimit int
	flagSavesClear bool
)

var savesCmd = &cobra.Command{
	Use:   "saves [slot]",
	Short: "Show save history",
	Long: `Display stored saves from the sqlite database.

Without arguments every slot is listed. With a slot name (the game ID
unless --slot was used when playing) the newest saves of that slot are
shown, newest first. Loading always restores the newest one.

Examples:
  chronoshift saves
  chronoshift saves drift
  chronoshift saves explore --limit 20
  chronoshift saves drift --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSaves,
}

func init() {
	savesCmd.Flags().IntVar(&flagSavesLimit, "limit", 10, "Number of saves to show")
	savesCmd.Flags().BoolVar(&flagSavesClear, "clear", false, "Delete every save of the slot")
}

func runSaves(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagSavesClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a slot name")
			return
		}
		printSlots(store)
		return
	}

	slot := args[0]
	if flagSavesClear {
		if err := store.Clear(slot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared saves of %q\n", slot)
		return
	}
	printHistory(store, slot)
}

func printSlots(store *storage.Store) {
	slots, err := store.Slots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving slots: %v\n", err)
		return
	}

	if len(slots) == 0 {
		fmt.Println("No saves recorded yet.")
		fmt.Println()
		fmt.Println("Play with '--backend sqlite' and press Esc then 1 to save.")
		return
	}

	fmt.Println("Save slots:")
	fmt.Println()
	fmt.Printf("  %-20s  %-8s  %-5s  %s\n", "Slot", "Game", "Saves", "Last saved")
	fmt.Printf("  %-20s  %-8s  %-5s  %s\n", "----", "----", "-----", "----------")
	for _, st := range slots {
		fmt.Printf("  %-20s  %-8s  %-5d  %s\n", st.Slot, st.Game, st.Count, st.LastSaved.Format("2006-01-02 15:04"))
	}
}

func printHistory(store *storage.Store, slot string) {
	entries, err := store.History(slot, flagSavesLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving saves: %v\n", err)
		return
	}

	fmt.Printf("Saves - %s\n", slot)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No saves in this slot.")
		return
	}

	fmt.Printf("  %-3s  %-16s  %-16s  %s\n", "#", "Timeline", "Saved", "Save ID")
	fmt.Printf("  %-3s  %-16s  %-16s  %s\n", "-", "--------", "-----", "-------")

	names := make(map[string][]string)
	for i, e := range entries {
		if _, ok := names[e.Game]; !ok {
			names[e.Game] = tui.TimelineNames(e.Game)
		}
		timeline := fmt.Sprintf("#%d", e.TimelineIndex)
		if n := names[e.Game]; e.TimelineIndex >= 0 && e.TimelineIndex < len(n) {
			timeline = n[e.TimelineIndex]
		}
		fmt.Printf("  %-3d  %-16s  %-16s  %s\n", i+1, timeline, e.CreatedAt.Format("2006-01-02 15:04"), e.SaveID)
	}
}
