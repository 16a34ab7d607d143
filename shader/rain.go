package shader

// Falling columns of pseudo-random 5x7 glyphs. Each column gets its own speed,
// phase and trail length from a hash of the column index; glyphs re-roll at a
// per-column rate. The pointer adds a green halo that also brightens glyphs.
const rainFragmentSource = `#version 300 es
precision highp float;

uniform float u_time;
uniform vec2  u_mouse;      // [0,1], y up
uniform vec2  u_resolution; // pixels

out vec4 fragColor;

const float CELL = 16.0;

float hash(vec2 p) {
    p = fract(p * vec2(123.34, 456.21));
    p += dot(p, p + 45.32);
    return fract(p.x * p.y);
}

float glyph(vec2 cellUV, float seed) {
    vec2 g = floor(cellUV * vec2(5.0, 7.0));
    if (g.x < 0.0 || g.y < 0.0 || g.x > 4.0 || g.y > 6.0) {
        return 0.0;
    }
    float gx = min(g.x, 4.0 - g.x);
    return step(0.5, hash(vec2(gx, g.y) + seed * 17.0));
}

void main() {
    vec2 cellSize = vec2(CELL * 0.6, CELL);
    vec2 frag = gl_FragCoord.xy;
    vec2 cell = floor(frag / cellSize);
    vec2 cellUV = (fract(frag / cellSize) - 0.1) / 0.8;

    float rows = ceil(u_resolution.y / CELL);
    float colSeed = hash(vec2(cell.x, 0.0));
    float speed = 4.0 + colSeed * 10.0;
    float phase = hash(vec2(cell.x, 1.0)) * 100.0;
    float trail = 8.0 + hash(vec2(cell.x, 2.0)) * 16.0;

    float head = mod(u_time * speed + phase, rows + trail);
    float rowFromTop = rows - cell.y - 1.0;
    float d = head - rowFromTop;
    float intensity = (d >= 0.0 && d < trail) ? 1.0 - d / trail : 0.0;

    float tick = floor(u_time * (2.0 + colSeed * 6.0) + hash(cell) * 10.0);
    float lit = glyph(cellUV, hash(cell + tick));

    vec3 green = vec3(0.267, 1.0, 0.733); // #44ffbb
    vec3 color = green * lit * intensity;
    color = mix(color, vec3(0.85, 1.0, 0.95) * lit, step(0.0, d) * step(d, 1.0));

    vec2 aspect = vec2(u_resolution.x / u_resolution.y, 1.0);
    float mouseDist = length((frag / u_resolution - u_mouse) * aspect);
    float glow = smoothstep(0.35, 0.0, mouseDist);
    color += green * glow * (0.15 + 0.6 * lit);

    fragColor = vec4(color, 1.0);
}
`
