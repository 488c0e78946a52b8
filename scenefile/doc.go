// Package scenefile is a small animation engine reading declarative YAML
// scene documents. It allocates and draws exclusively through the
// engine.Factory and engine.Renderer it is given, which makes it a
// convenient stand-in for a full runtime when exercising a host binding.
//
// A document lists shared images and one or more artboards. Each artboard
// holds shapes (a vector path or an image, optionally drawn as a textured
// mesh), linear animations keyed on shape properties, and state machines
// that switch animations based on inputs and pointer listeners:
//
//	images:
//	  - name: logo
//	    data: iVBORw0KGgo...            # base64 PNG, JPEG or GIF
//	artboards:
//	  - name: Main
//	    width: 200
//	    height: 100
//	    background: "#ffffff"
//	    shapes:
//	      - name: box
//	        x: 10
//	        y: 10
//	        path: "M0 0 L40 0 L40 40 L0 40 Z"
//	        fill: {color: "#ff0000"}
//	        stroke: {color: "#000000", thickness: 2, join: round}
//	    animations:
//	      - name: slide
//	        fps: 30
//	        duration: 30                # frames
//	        loop: oneShot
//	        keys:
//	          - shape: box
//	            property: x
//	            frames: [{frame: 0, value: 10}, {frame: 30, value: 150}]
//	    stateMachines:
//	      - name: toggle
//	        inputs: [{name: on, type: bool}]
//	        states: [{name: idle}, {name: moving, animation: slide}]
//	        transitions:
//	          - {from: idle, to: moving, conditions: [{input: on, op: eq, value: true}]}
//	        listeners:
//	          - {shape: box, event: down, input: on, action: toggle}
//
// Colours are CSS hex strings (#rgb, #rrggbb or #rrggbbaa). Rotation is in
// degrees. Paths accept the SVG commands M, L, H, V, Q, C and Z in absolute
// or relative form; rect: [x, y, w, h] is a shorthand for a closed
// rectangle.
package scenefile
