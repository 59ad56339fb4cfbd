/*
Package troller is an interactive operator console for a Minecraft server's
scripting API.

The operator picks a host, the tool connects once, and a numbered menu offers
world effects aimed at a chosen player: an air (or TNT) nuke, a timed stream of
bombs, a flood and a bedrock wall. Every value the operator types goes through
a prompt that re-asks until the input is valid.

# Layout

  - pkg/prompt: typed, validated input (integer, string, boolean).
  - pkg/menu: explicit action builder and the numbered dispatch loop.
  - pkg/style: intent-based terminal styling.
  - internal/world: the scripting API client and its line protocol.
  - internal/troll: the effects.
  - internal/cli: session wiring and interrupt handling.

# Usage

	troller --host 192.168.1.20
	DEBUG=1 troller
*/
package troller
