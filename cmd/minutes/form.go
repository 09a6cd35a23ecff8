package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/germanamz/minutes/pkg/engine"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

// formInput is the state edited by the interactive form.
type formInput struct {
	providerID string
	credential string
	notes      string
}

// providerOptions builds select options in catalog order.
func providerOptions(descs []provider.Descriptor) []huh.Option[string] {
	opts := make([]huh.Option[string], len(descs))
	for i, d := range descs {
		opts[i] = huh.NewOption(providerLabel(d), d.ID)
	}
	return opts
}

// providerLabel renders a descriptor as a single picker line.
func providerLabel(d provider.Descriptor) string {
	label := fmt.Sprintf("%s (%s) - %s", d.DisplayName, d.VendorName, d.Description)
	if d.Recommended {
		label += " [recommended]"
	}
	return label
}

func notBlank(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// runForm asks for the provider, then its credential and the notes. Values
// already present in in are offered as defaults.
func runForm(catalog *provider.Catalog, cfg engine.Config, in *formInput) error {
	selected := in.providerID
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Provider").
			Options(providerOptions(catalog.All())...).
			Value(&in.providerID),
	)).Run(); err != nil {
		return err
	}

	d, err := catalog.Describe(in.providerID)
	if err != nil {
		return err
	}

	if in.providerID != selected || in.credential == "" {
		in.credential = cfg.Credential(in.providerID)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(d.CredentialLabel).
			Placeholder(d.CredentialPlaceholder).
			EchoMode(huh.EchoModePassword).
			Validate(notBlank(engine.MsgMissingCredential)).
			Value(&in.credential),
		huh.NewText().
			Title("Meeting notes").
			Placeholder("Paste your meeting notes here...").
			Lines(12).
			Validate(notBlank(engine.MsgMissingNotes)).
			Value(&in.notes),
	)).Run()
}
