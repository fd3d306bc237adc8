// Package apply activates an installed theme on the running desktop.
//
// Activation is a list of independent steps (GTK theme, icon and cursor
// themes, GNOME Shell theme, window-manager theme and GTK settings.ini).
// Each step may fail on its own; the Report collects what was applied and
// what was not. Window-manager failures are expected on most desktops and
// are left out of the report.
package apply
