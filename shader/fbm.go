package shader

// Value noise on a sine lattice summed over six octaves, three layered fields
// and a soft glow that follows the pointer.
const fbmFragmentSource = `#version 300 es
precision highp float;

uniform float u_time;
uniform vec2  u_mouse;      // [0,1], y up
uniform vec2  u_resolution; // pixels

out vec4 fragColor;

float noise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    f = f * f * (3.0 - 2.0 * f);

    float a = sin(i.x + i.y * 31.23 + u_time);
    float b = sin(i.x + 1.0 + i.y * 31.23 + u_time);
    float c = sin(i.x + (i.y + 1.0) * 31.23 + u_time);
    float d = sin(i.x + 1.0 + (i.y + 1.0) * 31.23 + u_time);

    return mix(mix(a, b, f.x), mix(c, d, f.x), f.y);
}

float fbm(vec2 p) {
    float sum = 0.0;
    float amp = 1.0;
    float freq = 1.0;
    for (int i = 0; i < 6; i++) {
        sum += noise(p * freq) * amp;
        amp *= 0.5;
        freq *= 2.0;
        p += vec2(3.123, 1.732);
    }
    return sum;
}

void main() {
    vec2 uv = gl_FragCoord.xy / u_resolution;
    vec2 aspect = vec2(u_resolution.x / u_resolution.y, 1.0);

    uv = uv * 2.0 - 1.0;
    uv *= aspect;

    vec2 mouse = (u_mouse * 2.0 - 1.0) * aspect;
    float mouseEffect = smoothstep(0.5, 0.0, length(uv - mouse));

    float t = u_time * 0.2;
    vec2 movement = vec2(sin(t * 0.5), cos(t * 0.7));

    float n1 = fbm(uv * 3.0 + movement + mouseEffect);
    float n2 = fbm(uv * 2.0 - movement - mouseEffect);
    float n3 = fbm(uv * 4.0 + vec2(n1, n2));

    vec3 col1 = vec3(0.267, 1.0, 0.733);   // #44ffbb
    vec3 col2 = vec3(0.0, 0.0, 0.0);
    vec3 col3 = vec3(0.043, 0.863, 0.471); // #0bdc78

    vec3 color = mix(col1, col2, n1);
    color = mix(color, col3, n2 * 0.5);
    color += n3 * 0.2;
    color += vec3(mouseEffect * 0.2);

    fragColor = vec4(color, 1.0);
}
`
