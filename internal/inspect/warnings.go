package inspect

import (
	"fmt"

	"github.com/pranshuparmar/bundlecheck/internal/provision"
	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

// Warnings compares the identities reported by the different layers. A
// re-signed bundle typically keeps its Info.plist but ships a profile issued
// for another identifier.
func Warnings(lines []model.ResultLine) []string {
	r := model.Result{Lines: lines}
	var warnings []string

	profile, hasProfile := r.Line(model.LayerCertificate, LabelProfile)
	if hasProfile && (profile.Status == model.StatusFieldNotFound || profile.Status == model.StatusParseFailed) {
		warnings = append(warnings, "Provisioning profile is present but its application-identifier could not be read")
	}
	if _, ok := r.Line(model.LayerCertificate, LabelReadError); ok {
		warnings = append(warnings, "Provisioning profile is present but could not be read")
	}

	runtimeID, hasRuntime := okValue(r.Line(model.LayerAPI, LabelRuntime))

	// the file layer label follows the configured manifest name
	var plistID, plistLabel string
	var hasPlist bool
	for _, l := range lines {
		if l.Layer == model.LayerFile {
			plistID, plistLabel, hasPlist = l.Value, l.Label, l.OK()
			break
		}
	}

	if hasRuntime && hasPlist && runtimeID != plistID {
		warnings = append(warnings, fmt.Sprintf("Runtime identifier %q differs from %s identifier %q", runtimeID, plistLabel, plistID))
	}

	reference, source, hasReference := plistID, plistLabel, hasPlist
	if !hasReference {
		reference, source, hasReference = runtimeID, "runtime", hasRuntime
	}
	if appID, ok := okValue(profile, hasProfile); ok && hasReference && !provision.MatchesBundleID(appID, reference) {
		warnings = append(warnings, fmt.Sprintf("Profile application-identifier %q does not cover %s identifier %q (bundle may have been re-signed)", appID, source, reference))
	}

	return warnings
}

func okValue(l model.ResultLine, found bool) (string, bool) {
	return l.Value, found && l.OK()
}
