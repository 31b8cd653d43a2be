package main

import (
	"flag"
	"fmt"

	"github.com/weykon/agent-hand/internal/store"
)

func handleList(profile string, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "JSON output")
	all := fs.Bool("all", false, "list sessions across all profiles")
	_ = fs.Parse(normalizeArgs(fs, args))

	out := NewCLIOutput(*jsonOutput, false)

	if *all {
		profiles, err := store.ListProfiles()
		if err != nil {
			fatalf("listing profiles: %v", err)
		}
		type profileListing struct {
			Profile   string           `json:"profile"`
			Instances []*store.Instance `json:"instances"`
		}
		var listings []profileListing
		for _, p := range profiles {
			_, instances, _ := openCatalog(p)
			listings = append(listings, profileListing{Profile: p, Instances: instances})
		}
		if *jsonOutput {
			out.Print("", listings)
			return
		}
		for _, l := range listings {
			fmt.Printf("profile %s:\n", l.Profile)
			printInstances(l.Instances)
		}
		return
	}

	_, instances, _ := openCatalog(profile)
	if *jsonOutput {
		out.Print("", instances)
		return
	}
	printInstances(instances)
}

func printInstances(instances []*store.Instance) {
	if len(instances) == 0 {
		fmt.Println("no sessions")
		return
	}
	for _, in := range instances {
		group := in.GroupPath
		if group == "" {
			group = "-"
		}
		fmt.Printf("%s  %-20s  %-8s  %s  %s\n", in.ID, in.Title, in.Status, group, in.ProjectPath)
	}
}
