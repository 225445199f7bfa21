package commands

import "testing"

func TestRootCommand(t *testing.T) {
	if rootCmd.Use == "" {
		t.Error("root command has no usage")
	}

	want := map[string]bool{
		"chat":        false,
		"sessions":    false,
		"quick":       false,
		"suggestions": false,
		"config":      false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSessionsSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range sessionsCmd.Commands() {
		names[cmd.Name()] = true
	}
	if !names["show"] || !names["delete"] {
		t.Errorf("sessions subcommands = %v", names)
	}
}
