// Package style turns stylesheets into fyne themes.
//
// A Provider holds the rules parsed from one stylesheet. Providers are
// attached to a display through a Cascade, which resolves every theme lookup
// against the attached providers in priority order and falls back to the
// toolkit's built-in theme for anything no provider sets.
//
// The stylesheet dialect is a small CSS subset:
//
//	@define-color primary #3584e4;
//
//	window {
//	    background-color: #181818;
//	    color: @text;
//	    font-size: 13px;
//	}
//
//	@media (prefers-color-scheme: light) {
//	    window { background-color: #fafafa; }
//	}
package style
