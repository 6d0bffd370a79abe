package main

import (
	"fmt"

	"github.com/Vovarama1992/museo/internal/client"
	"github.com/Vovarama1992/museo/internal/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	title = color.New(color.FgCyan, color.Bold)
	faint = color.New(color.FgHiBlack)
	warn  = color.New(color.FgYellow)
)

func addClientCommands(root *cobra.Command) {
	roomsCmd := &cobra.Command{
		Use:   "rooms",
		Short: "List rooms with their exhibits",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("api")
			store := client.NewStore(client.NewAPI(base))

			if err := store.FetchAll(cmd.Context()); err != nil {
				for _, c := range []client.Collection{client.Rooms, client.Exhibits, client.Content} {
					if msg := store.Err(c); msg != "" {
						warn.Println("⚠️ " + msg)
					}
				}
				if store.RoomCount() == 0 {
					return err
				}
			}

			title.Printf("🏛️  %d salas, %d exhibiciones\n", store.RoomCount(), store.ExhibitCount())
			for _, r := range store.Rooms() {
				fmt.Printf("%s %s %s\n", r.Icon, r.Name, faint.Sprintf("(%s)", r.ID))
				for _, e := range store.ExhibitsByRoom(r.ID) {
					fmt.Printf("   • %s\n", e.Title)
				}
			}
			return nil
		},
	}

	animalCmd := &cobra.Command{
		Use:   "animal [name]",
		Short: "Look up an animal through the server proxy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("api")
			ext := client.NewExternal(base, domain.NewAnimalFallback(), domain.NewPlantFallback())

			recs, src, err := ext.AnimalByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSource(src)
			for _, a := range recs {
				title.Println(a.Name)
				fmt.Printf("  %s\n", faint.Sprint(a.Taxonomy.ScientificName))
				for k, v := range a.Characteristics {
					fmt.Printf("  %s: %s\n", k, v)
				}
			}
			if len(recs) == 0 {
				warn.Println("sin resultados")
			}
			return nil
		},
	}

	plantsCmd := &cobra.Command{
		Use:   "plants [query]",
		Short: "Search plants through the server proxy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("api")
			ext := client.NewExternal(base, domain.NewAnimalFallback(), domain.NewPlantFallback())

			res, src, err := ext.SearchPlants(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSource(src)
			for _, p := range res.Data {
				fmt.Printf("%s %s\n", title.Sprint(p.CommonName), faint.Sprintf("(%s, id %d)", p.ScientificName, p.ID))
			}
			if len(res.Data) == 0 {
				warn.Println("sin resultados")
			}
			return nil
		},
	}

	plantCmd := &cobra.Command{
		Use:   "plant [id]",
		Short: "Show plant details through the server proxy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("api")
			ext := client.NewExternal(base, domain.NewAnimalFallback(), domain.NewPlantFallback())

			raw, err := ext.PlantByID(cmd.Context(), args[0])
			if err != nil {
				warn.Println("planta no encontrada")
				return nil
			}
			fmt.Println(string(raw))
			return nil
		},
	}

	root.AddCommand(roomsCmd, animalCmd, plantsCmd, plantCmd)
}

func printSource(src client.Source) {
	if src == client.SourceFallback {
		warn.Println("📦 datos de respaldo (mock)")
	}
}
