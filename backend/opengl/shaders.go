package opengl

// Vertex positions arrive in clip space already; neither program
// applies a projection.

const gridVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec3 aColor;

out vec3 Color;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
` + "\x00"

const gridFragmentShaderSource = `
#version 410 core
in vec3 Color;

out vec4 FragColor;

void main() {
    FragColor = vec4(Color, 1.0);
}
` + "\x00"

const textVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Coverage-as-alpha: the atlas is single-channel, its R value is the
// glyph ink density composited against the clear color.
const textFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D atlasTexture;

void main() {
    FragColor = Color * vec4(1.0, 1.0, 1.0, texture(atlasTexture, TexCoord).r);
}
` + "\x00"
