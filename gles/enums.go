// SPDX-License-Identifier: Unlicense OR MIT

package gles

const (
	EXTENSIONS     = 0x1f03
	FALSE          = 0
	NO_ERROR       = 0x0
	NUM_EXTENSIONS = 0x821D
	RENDERER       = 0x1F01
	TRUE           = 1
	VENDOR         = 0x1F00
	VERSION        = 0x1f02

	// NV_viewport_swizzle
	VIEWPORT_SWIZZLE_POSITIVE_X_NV = 0x9350
	VIEWPORT_SWIZZLE_NEGATIVE_X_NV = 0x9351
	VIEWPORT_SWIZZLE_POSITIVE_Y_NV = 0x9352
	VIEWPORT_SWIZZLE_NEGATIVE_Y_NV = 0x9353
	VIEWPORT_SWIZZLE_POSITIVE_Z_NV = 0x9354
	VIEWPORT_SWIZZLE_NEGATIVE_Z_NV = 0x9355
	VIEWPORT_SWIZZLE_POSITIVE_W_NV = 0x9356
	VIEWPORT_SWIZZLE_NEGATIVE_W_NV = 0x9357
	VIEWPORT_SWIZZLE_X_NV          = 0x9358
	VIEWPORT_SWIZZLE_Y_NV          = 0x9359
	VIEWPORT_SWIZZLE_Z_NV          = 0x935A
	VIEWPORT_SWIZZLE_W_NV          = 0x935B

	// EXT_disjoint_timer_query
	QUERY_COUNTER_BITS_EXT     = 0x8864
	CURRENT_QUERY_EXT          = 0x8865
	QUERY_RESULT_EXT           = 0x8866
	QUERY_RESULT_AVAILABLE_EXT = 0x8867
	TIME_ELAPSED_EXT           = 0x88BF
	TIMESTAMP_EXT              = 0x8E28
	GPU_DISJOINT_EXT           = 0x8FBB

	// OES_vertex_array_object
	VERTEX_ARRAY_BINDING_OES = 0x85B5

	// EXT_multisampled_render_to_texture
	RENDERBUFFER_SAMPLES_EXT                   = 0x8CAB
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE_EXT     = 0x8D56
	MAX_SAMPLES_EXT                            = 0x8D57
	FRAMEBUFFER_ATTACHMENT_TEXTURE_SAMPLES_EXT = 0x8D6C

	// NV_framebuffer_blit
	READ_FRAMEBUFFER_NV         = 0x8CA8
	DRAW_FRAMEBUFFER_NV         = 0x8CA9
	DRAW_FRAMEBUFFER_BINDING_NV = 0x8CA6
	READ_FRAMEBUFFER_BINDING_NV = 0x8CAA

	// NV_scissor_exclusive
	SCISSOR_TEST_EXCLUSIVE_NV = 0x9C2F
	SCISSOR_BOX_EXCLUSIVE_NV  = 0x9C10

	// EXT_buffer_storage
	MAP_READ_BIT                 = 0x0001
	MAP_WRITE_BIT                = 0x0002
	MAP_PERSISTENT_BIT_EXT       = 0x0040
	MAP_COHERENT_BIT_EXT         = 0x0080
	DYNAMIC_STORAGE_BIT_EXT      = 0x0100
	CLIENT_STORAGE_BIT_EXT       = 0x0200
	BUFFER_IMMUTABLE_STORAGE_EXT = 0x821F
	BUFFER_STORAGE_FLAGS_EXT     = 0x8220

	// EXT_clip_control
	LOWER_LEFT_EXT          = 0x8CA1
	UPPER_LEFT_EXT          = 0x8CA2
	NEGATIVE_ONE_TO_ONE_EXT = 0x935E
	ZERO_TO_ONE_EXT         = 0x935F
	CLIP_ORIGIN_EXT         = 0x935C
	CLIP_DEPTH_MODE_EXT     = 0x935D
)
