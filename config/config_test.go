package config_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lensprior/config"
	"github.com/katalvlaran/lensprior/distribution"
	"github.com/katalvlaran/lensprior/param"
	"github.com/katalvlaran/lensprior/prior"
)

// paramNames lists the declared parameter names of a component in order.
func paramNames(cs prior.ComponentSpec) []string {
	out := make([]string, len(cs.Params))
	for i, ns := range cs.Params {
		out[i] = ns.Name
	}

	return out
}

// TestLoad_Diagonal reads the independent example file.
func TestLoad_Diagonal(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "diagonal.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "diagonal_demo", cfg.Name)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(1113), cfg.Seed)
	assert.Equal(t, 16, cfg.NData)
	assert.Equal(t, config.ClassDiagonal, cfg.Class)
	assert.Equal(t, []string{"lens_mass", "src_light"}, cfg.Components)
	assert.Equal(t, filepath.Join("testdata", "diagonal.yaml"), cfg.Path)
	assert.Nil(t, cfg.Omega.CovInfo)

	lm := cfg.Omega.Components["lens_mass"]
	assert.Equal(t, prior.ProfileSPEMD, lm.Profile)
	assert.Equal(t, []string{"center_x", "center_y", "gamma", "theta_E", "e1", "e2"}, paramNames(lm),
		"file order is kept")

	thetaE, ok := lm.Params[3].Spec.(param.Normal)
	require.True(t, ok)
	assert.Equal(t, 0.0, thetaE.Lower)
	assert.True(t, math.IsInf(thetaE.Upper, 1))

	p, err := cfg.NewPrior(prior.WithStrictProfiles())
	require.NoError(t, err)
	_, isInd := p.(*prior.Independent)
	assert.True(t, isInd)
}

// TestLoad_Cov reads the covariant file with anchors and scalar bounds.
func TestLoad_Cov(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "cov.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.ClassCov, cfg.Class)

	ci := cfg.Omega.CovInfo
	require.NotNil(t, ci)
	assert.Equal(t, []prior.ParamRef{
		{Component: "lens_mass", Param: "center_x"},
		{Component: "lens_mass", Param: "center_y"},
	}, ci.Params)
	assert.Equal(t, []float64{0, 0}, ci.Omega.Mu)
	assert.Equal(t, [][]float64{{0.01, 0.005}, {0.005, 0.01}}, ci.Omega.CovMat)
	assert.Equal(t, []bool{false, false}, ci.Omega.IsLog)
	assert.Equal(t, []float64{-0.5}, ci.Omega.Lower, "scalar bound broadcasts")
	assert.Equal(t, []float64{0.5, 0.5}, ci.Omega.Upper)

	src := cfg.Omega.Components["src_light"]
	assert.Equal(t, src.Params[4].Spec, cfg.Omega.Components["lens_mass"].Params[1].Spec, "alias resolves")

	p, err := cfg.NewPrior(prior.WithStrictProfiles())
	require.NoError(t, err)
	s, err := p.Sample()
	require.NoError(t, err)
	assert.Equal(t, s["lens_mass"]["center_x"], s["lens_light"]["center_x"])
	assert.Greater(t, s["lens_mass"]["center_x"], -0.5)
	assert.Less(t, s["lens_mass"]["center_x"], 0.5)
}

// TestNewPrior_SeedReproduces checks the file seed and its override.
func TestNewPrior_SeedReproduces(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "cov.yaml"))
	require.NoError(t, err)

	a, err := cfg.NewPrior()
	require.NoError(t, err)
	b, err := cfg.NewPrior()
	require.NoError(t, err)
	c, err := cfg.NewPrior(prior.WithSeed(cfg.Seed + 1))
	require.NoError(t, err)

	sa, err := a.Sample()
	require.NoError(t, err)
	sb, err := b.Sample()
	require.NoError(t, err)
	sc, err := c.Sample()
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
	assert.NotEqual(t, sa, sc)
}

// TestParse_Errors checks the sentinel of each rejected document.
func TestParse_Errors(t *testing.T) {
	t.Parallel()

	const omega = "bnn_omega:\n  c:\n    profile: P\n    x: {dist: normal, mu: 0, sigma: 1}\n"
	tests := []struct {
		name string
		doc  string
		want []error
	}{
		{"syntax", "components: [a", []error{config.ErrBadValue}},
		{"no components", omega, []error{config.ErrMissingKey}},
		{"no omega", "components: [c]\n", []error{config.ErrMissingKey}},
		{"null omega", "components: [c]\nbnn_omega:\n", []error{config.ErrMissingKey}},
		{"bad class", "bnn_prior_class: Fancy\ncomponents: [c]\n" + omega, []error{config.ErrBadValue}},
		{"negative n_data", "n_data: -1\ncomponents: [c]\n" + omega, []error{config.ErrBadValue}},
		{"bad seed", "seed: abc\ncomponents: [c]\n" + omega, []error{config.ErrBadValue}},
		{"omega not mapping", "components: [c]\nbnn_omega: [1, 2]\n", []error{config.ErrBadValue}},
		{"missing profile", "components: [c]\nbnn_omega:\n  c:\n    x: {dist: normal, mu: 0, sigma: 1}\n", []error{config.ErrMissingKey}},
		{"duplicate param", "components: [c]\nbnn_omega:\n  c:\n    profile: P\n    x: {dist: normal, mu: 0, sigma: 1}\n    x: {dist: normal, mu: 0, sigma: 1}\n", []error{config.ErrBadValue}},
		{"scalar param", "components: [c]\nbnn_omega:\n  c:\n    profile: P\n    x: 3\n", []error{config.ErrBadValue}},
		{"bad spec", "components: [c]\nbnn_omega:\n  c:\n    profile: P\n    x: {dist: normal, mu: 0}\n", []error{config.ErrBadValue, param.ErrBadSpec}},
		{"unknown dist", "components: [c]\nbnn_omega:\n  c:\n    profile: P\n    x: {dist: lognormal, mu: 0, sigma: 1}\n", []error{config.ErrBadValue, param.ErrUnknownDistribution}},
		{"cov missing list", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_omega: {mu: [0], cov_mat: [[1]]}\n", []error{config.ErrMissingKey}},
		{"cov missing omega", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_params_list: [[c, x]]\n", []error{config.ErrMissingKey}},
		{"cov missing mu", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_params_list: [[c, x]]\n    cov_omega: {cov_mat: [[1]]}\n", []error{config.ErrMissingKey}},
		{"cov missing cov_mat", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_params_list: [[c, x]]\n    cov_omega: {mu: [0]}\n", []error{config.ErrMissingKey}},
		{"cov bad pair", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_params_list: [[c]]\n    cov_omega: {mu: [0], cov_mat: [[1]]}\n", []error{config.ErrBadValue}},
		{"cov unknown key", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_params_list: [[c, x]]\n    cov_omega: {mu: [0], cov_mat: [[1]], sigma: 2}\n", []error{config.ErrBadValue}},
		{"cov wrong dist", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_params_list: [[c, x]]\n    cov_omega: {dist: normal, mu: [0], cov_mat: [[1]]}\n", []error{config.ErrBadValue}},
		{"cov bad bound", "components: [c]\nbnn_omega:\n  cov_info:\n    cov_params_list: [[c, x]]\n    cov_omega: {mu: [0], cov_mat: [[1]], lower: {a: 1}}\n", []error{config.ErrBadValue}},
		{"cov info unknown key", "components: [c]\nbnn_omega:\n  cov_info:\n    extra: 1\n", []error{config.ErrBadValue}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, prior.ErrConfig)
			for _, want := range tc.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

// TestParse_Defaults checks optional keys.
func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("components: [c]\nbnn_omega:\n  c:\n    profile: P\n    x: {dist: beta, a: 2, b: 2}\n"))
	require.NoError(t, err)
	assert.False(t, cfg.HasSeed)
	assert.Equal(t, config.ClassDiagonal, cfg.Class)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, param.NewBeta(2, 2), cfg.Omega.Components["c"].Params[0].Spec)
}

// TestParse_NullBoundsAndIsLog keeps open bounds nil.
func TestParse_NullBoundsAndIsLog(t *testing.T) {
	doc := "components: [c]\nbnn_omega:\n  c:\n    profile: P\n  cov_info:\n" +
		"    cov_params_list: [[c, x]]\n    cov_omega: {mu: [0], cov_mat: [[1]], lower: null, upper: .inf, is_log: null}\n"
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	co := cfg.Omega.CovInfo.Omega
	assert.Nil(t, co.Lower)
	assert.Nil(t, co.IsLog)
	require.Len(t, co.Upper, 1)
	assert.True(t, math.IsInf(co.Upper[0], 1))
}

// TestNewPrior_PropagatesPriorErrors keeps construction sentinels intact.
func TestNewPrior_PropagatesPriorErrors(t *testing.T) {
	doc := "bnn_prior_class: CovBNNPrior\ncomponents: [c]\nbnn_omega:\n  c:\n    profile: P\n  cov_info:\n" +
		"    cov_params_list: [[c, x], [c, y]]\n    cov_omega: {mu: [0, 0], cov_mat: [[1, 2], [2, 1]]}\n"
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	_, err = cfg.NewPrior(prior.WithDerivedRules(nil))
	assert.ErrorIs(t, err, distribution.ErrInvalidCovariance)


	cfg.Omega.CovInfo.Omega.CovMat = [][]float64{{1, 0}, {0, 1}}
	_, err = cfg.NewPrior()
	assert.ErrorIs(t, err, prior.ErrConfig, "default rules need lens_mass and src_light")
}

// TestLoad_MissingFile wraps the os error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, prior.ErrConfig))
}
