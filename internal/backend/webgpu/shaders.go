//go:build windows

package webgpu

// workgroupSize is the number of threads per workgroup.
const workgroupSize = 64

// mat4MultiplyBatchShader multiplies matching row-major 4x4 blocks:
// result[m] = a[m] * b[m]. One invocation per output element.
const mat4MultiplyBatchShader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    count: u32, // number of 4x4 blocks
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.count * 16u) {
        return;
    }

    let base = (idx / 16u) * 16u;
    let row = (idx % 16u) / 4u;
    let col = idx % 4u;

    var sum: f32 = 0.0;
    for (var k: u32 = 0u; k < 4u; k = k + 1u) {
        sum = sum + a[base + row * 4u + k] * b[base + k * 4u + col];
    }
    result[idx] = sum;
}
`

// normalizeBatchShader normalizes (x, y, z) triples, mapping zero to zero.
const normalizeBatchShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    count: u32, // number of 3-vectors
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let v = global_id.x;
    if (v >= params.count) {
        return;
    }

    let base = v * 3u;
    let x = input[base];
    let y = input[base + 1u];
    let z = input[base + 2u];
    let len = sqrt(x * x + y * y + z * z);
    if (len == 0.0) {
        result[base] = 0.0;
        result[base + 1u] = 0.0;
        result[base + 2u] = 0.0;
        return;
    }
    result[base] = x / len;
    result[base + 1u] = y / len;
    result[base + 2u] = z / len;
}
`
