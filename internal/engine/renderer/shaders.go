package renderer

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uProjection * uView * world;
}
`

const fragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec4 uColor;
uniform vec3 uEye;
uniform vec3 uLightDir;
uniform float uAmbient;
uniform float uDirectional;
uniform float uRoughness;
uniform float uMetalness;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	vec3 v = normalize(uEye - vWorldPos);
	// Double-sided faces seen from behind light like their front.
	if (dot(n, v) < 0.0) {
		n = -n;
	}

	float diffuse = max(dot(n, uLightDir), 0.0) * uDirectional;
	vec3 h = normalize(uLightDir + v);
	float shininess = mix(96.0, 4.0, uRoughness);
	float spec = pow(max(dot(n, h), 0.0), shininess) * (1.0 - uRoughness) * uDirectional;

	vec3 base = uColor.rgb * (1.0 - 0.5 * uMetalness);
	vec3 specColor = mix(vec3(0.04), uColor.rgb, uMetalness);
	vec3 rgb = base * (uAmbient + diffuse) + specColor * spec;
	FragColor = vec4(rgb, uColor.a);
}
`
