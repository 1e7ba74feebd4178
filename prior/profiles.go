// SPDX-License-Identifier: MIT
// Package: lensprior/prior
//
// profiles.go — registry of supported profiles and their parameter names.
//
// The names follow the lenstronomy convention. By default the registry is
// documentation only; WithStrictProfiles makes the constructors check that
// every component's profile is known and all its parameters are produced.

package prior

import "sort"

// Profile names.
const (
	ProfileSPEMD          = "SPEMD"
	ProfileShearGammaPsi  = "SHEAR_GAMMA_PSI"
	ProfileSersicEllipse  = "SERSIC_ELLIPSE"
	ProfileLensedPosition = "LENSED_POSITION"
	ProfileSourcePosition = "SOURCE_POSITION"
)

// profileParams maps profile → required parameter names in canonical order.
var profileParams = map[string][]string{
	ProfileSPEMD:          {"center_x", "center_y", "gamma", "theta_E", "e1", "e2"},
	ProfileShearGammaPsi:  {"gamma_ext", "psi_ext"},
	ProfileSersicEllipse:  {"amp", "n_sersic", "R_sersic", "e1", "e2"},
	ProfileLensedPosition: {"amp"},
	ProfileSourcePosition: {"ra_source", "dec_source", "amp"},
}

// RequiredParams returns a copy of the parameter names of profile.
func RequiredParams(profile string) ([]string, bool) {
	ps, ok := profileParams[profile]
	if !ok {
		return nil, false
	}

	return append([]string(nil), ps...), true
}

// Profiles returns the registered profile names, sorted.
func Profiles() []string {
	out := make([]string, 0, len(profileParams))
	for name := range profileParams {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// checkProfiles verifies, for each component, that its profile is registered
// and that every required parameter is in produced.
func checkProfiles(op string, components []string, specs map[string]ComponentSpec, produced map[ParamRef]bool) error {
	for _, comp := range components {
		profile := specs[comp].Profile
		required, ok := profileParams[profile]
		if !ok {
			return configErrorf(op, "component %q: unknown profile %q", comp, profile)
		}
		for _, name := range required {
			if !produced[ParamRef{comp, name}] {
				return configErrorf(op, "component %q: profile %s requires %q", comp, profile, name)
			}
		}
	}

	return nil
}
