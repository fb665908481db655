package constants

// CloseIconSVG is drawn in the tip box's top right corner when the exit
// control is shown.
const CloseIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M6 6 L18 18 M18 6 L6 18" stroke="#FFFFFF" stroke-width="2.5" stroke-linecap="round" fill="none"/>
</svg>`

// ChevronLeftSVG and ChevronRightSVG decorate the back and next controls.
const (
	ChevronLeftSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M15 5 L8 12 L15 19" stroke="#FFFFFF" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" fill="none"/>
</svg>`

	ChevronRightSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M9 5 L16 12 L9 19" stroke="#FFFFFF" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" fill="none"/>
</svg>`
)
