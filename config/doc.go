// Package config loads a lens-prior configuration file into prior.Omega and
// builds the prior class it names.
//
// 📄 File shape (YAML):
//
//	name: demo
//	seed: 1113
//	n_data: 200
//	bnn_prior_class: CovBNNPrior     # or DiagonalBNNPrior (default)
//	components: [lens_mass, src_light, lens_light]
//	bnn_omega:
//	  lens_mass:
//	    profile: SPEMD
//	    theta_E: {dist: normal, mu: 1.1, sigma: 0.1, lower: 0}
//	  src_light:
//	    profile: SERSIC_ELLIPSE
//	    amp: {dist: beta, a: 2, b: 2, lower: 10, upper: 50}
//	  cov_info:
//	    cov_params_list: [[lens_mass, center_x], [lens_mass, center_y]]
//	    cov_omega:
//	      mu: [0, 0]
//	      cov_mat: [[0.01, 0], [0, 0.01]]
//	      lower: -0.5                 # scalar broadcasts, or one per pair
//
// Parameter order inside each component follows the file, so a given seed
// reproduces the same draws for the same file. Keys the sampler does not use
// (image, psf, output paths …) are ignored at the top level.
//
// Errors match ErrMissingKey or ErrBadValue, and always prior.ErrConfig.
package config
